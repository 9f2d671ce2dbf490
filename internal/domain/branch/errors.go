package branch

import "errors"

var (
	ErrBranchNotFound      = errors.New("branch not found")
	ErrBranchHasDependents = errors.New("branch still has users, students or teachers assigned")
)
