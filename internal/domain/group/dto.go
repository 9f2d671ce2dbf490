package group

import (
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GroupResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	TeacherID    string          `json:"teacher_id"`
	TeacherName  string          `json:"teacher_name,omitempty"`
	BranchID     string          `json:"branch_id"`
	StudentCount int             `json:"student_count"`
	Active       bool            `json:"active"`
}

type CreateGroupRequest struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	TeacherID string          `json:"teacher_id"`
	BranchID  string          `json:"branch_id"`
}

func (r *CreateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateGroupRequest struct {
	ID        string           `json:"-"`
	Name      *string          `json:"name,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	TeacherID *string          `json:"teacher_id,omitempty"`
}

func (r *UpdateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Price != nil && r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EnrollStudentRequest struct {
	StudentID string `json:"student_id"`
}

func (r *EnrollStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{Field: "student_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
