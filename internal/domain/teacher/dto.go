package teacher

import (
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type TeacherResponse struct {
	ID                string          `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Phone             *string         `json:"phone,omitempty"`
	Email             *string         `json:"email,omitempty"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	PaymentPercentage decimal.Decimal `json:"payment_percentage"`
	SalaryType        string          `json:"salary_type"`
	BranchID          string          `json:"branch_id"`
	BranchName        string          `json:"branch_name,omitempty"`
	Active            bool            `json:"active"`
}

type CreateTeacherRequest struct {
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Phone             *string          `json:"phone,omitempty"`
	Email             *string          `json:"email,omitempty"`
	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
	PaymentPercentage *decimal.Decimal `json:"payment_percentage,omitempty"`
	SalaryType        string           `json:"salary_type"`
	BranchID          string           `json:"branch_id"`
}

func (r *CreateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is not a valid phone number"})
	}
	if !SalaryType(r.SalaryType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "must be FIXED, PERCENTAGE or MIXED"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.PaymentPercentage != nil {
		if r.PaymentPercentage.IsNegative() || r.PaymentPercentage.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{Field: "payment_percentage", Message: "must be between 0 and 100"})
		}
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTeacherRequest struct {
	ID                string           `json:"-"`
	FirstName         *string          `json:"first_name,omitempty"`
	LastName          *string          `json:"last_name,omitempty"`
	Phone             *string          `json:"phone,omitempty"`
	Email             *string          `json:"email,omitempty"`
	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
	PaymentPercentage *decimal.Decimal `json:"payment_percentage,omitempty"`
	SalaryType        *string          `json:"salary_type,omitempty"`
}

func (r *UpdateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "must not be empty"})
	}
	if r.SalaryType != nil && !SalaryType(*r.SalaryType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "must be FIXED, PERCENTAGE or MIXED"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.PaymentPercentage != nil {
		if r.PaymentPercentage.IsNegative() || r.PaymentPercentage.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{Field: "payment_percentage", Message: "must be between 0 and 100"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
