package payment

import (
	"strings"

	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID           string          `json:"id"`
	StudentID    string          `json:"student_id"`
	StudentName  string          `json:"student_name,omitempty"`
	GroupID      string          `json:"group_id"`
	GroupName    string          `json:"group_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Description  *string         `json:"description,omitempty"`
	Category     string          `json:"category"`
	BranchID     string          `json:"branch_id"`
	BranchName   string          `json:"branch_name,omitempty"`
	PaymentYear  int             `json:"payment_year"`
	PaymentMonth int             `json:"payment_month"`
	CreatedAt    string          `json:"created_at"`
}

type CreatePaymentRequest struct {
	StudentID    string          `json:"student_id"`
	GroupID      string          `json:"group_id"`
	Amount       decimal.Decimal `json:"amount"`
	Description  *string         `json:"description,omitempty"`
	Category     string          `json:"category"`
	BranchID     string          `json:"branch_id"`
	PaymentYear  int             `json:"payment_year"`
	PaymentMonth int             `json:"payment_month"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{Field: "student_id", Message: "is required"})
	}
	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{Field: "group_id", Message: "is required"})
	}
	if !validator.IsPositiveAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if !Category(strings.ToUpper(r.Category)).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be CASH or CARD"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}
	if !validator.IsValidBillingYear(r.PaymentYear) {
		errs = append(errs, validator.ValidationError{Field: "payment_year", Message: "is out of range"})
	}
	if !validator.IsValidBillingMonth(r.PaymentMonth) {
		errs = append(errs, validator.ValidationError{Field: "payment_month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentAmountRequest struct {
	ID     string          `json:"-"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *UpdatePaymentAmountRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsPositiveAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnpaidStudentResponse is one owed (student, group, period) entry. A student
// enrolled in several groups with balances due appears once per owed group.
type UnpaidStudentResponse struct {
	StudentID       string          `json:"student_id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Phone           *string         `json:"phone,omitempty"`
	ParentPhone     *string         `json:"parent_phone,omitempty"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	GroupID         string          `json:"group_id"`
	GroupName       string          `json:"group_name"`
}

// StudentPaymentInfo summarises one student's standing in one group for a
// billing period.
type StudentPaymentInfo struct {
	StudentID    string          `json:"student_id"`
	GroupID      string          `json:"group_id"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Due          decimal.Decimal `json:"due"`
	Remaining    decimal.Decimal `json:"remaining"`
	Status       string          `json:"status"`
	PaymentYear  int             `json:"payment_year"`
	PaymentMonth int             `json:"payment_month"`
}
