package group

import "errors"

var (
	ErrGroupNotFound         = errors.New("group not found")
	ErrStudentNotEnrolled    = errors.New("student is not enrolled in this group")
	ErrStudentAlreadyInGroup = errors.New("student is already enrolled in this group")
	ErrTeacherBranchMismatch = errors.New("teacher belongs to a different branch")
	ErrStudentBranchMismatch = errors.New("student belongs to a different branch")
)
