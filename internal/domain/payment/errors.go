package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrBranchMismatch  = errors.New("student, group and payment must belong to the same branch")
)
