package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrGroupBranchMismatch = errors.New("group belongs to a different branch")
)
