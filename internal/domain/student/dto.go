package student

import (
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
)

type StudentResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Phone       *string `json:"phone,omitempty"`
	ParentPhone *string `json:"parent_phone,omitempty"`
	BranchID    string  `json:"branch_id"`
	Active      bool    `json:"active"`
}

type CreateStudentRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Phone       *string `json:"phone,omitempty"`
	ParentPhone *string `json:"parent_phone,omitempty"`
	BranchID    string  `json:"branch_id"`
}

func (r *CreateStudentRequest) Validate() error {
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
	if r.ParentPhone != nil && !validator.IsValidPhoneNumber(*r.ParentPhone) {
		errs = append(errs, validator.ValidationError{Field: "parent_phone", Message: "is not a valid phone number"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStudentRequest struct {
	ID          string  `json:"-"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ParentPhone *string `json:"parent_phone,omitempty"`
}

func (r *UpdateStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
