package salary

import "errors"

var (
	ErrSalaryPaymentNotFound = errors.New("salary payment not found")
	ErrTeacherBranchMismatch = errors.New("teacher belongs to a different branch")
)
