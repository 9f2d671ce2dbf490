package expense

import (
	"strings"

	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	BranchID    string          `json:"branch_id"`
	CreatedAt   string          `json:"created_at"`
}

type CreateExpenseRequest struct {
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	BranchID    string          `json:"branch_id"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Description != nil && len(*r.Description) > 255 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "must not exceed 255 characters"})
	}
	if !validator.IsPositiveAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if !Category(strings.ToUpper(r.Category)).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is not a valid expense category"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
