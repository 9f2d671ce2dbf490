package attendance

import (
	"strings"

	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name,omitempty"`
	GroupID     string  `json:"group_id"`
	GroupName   string  `json:"group_name,omitempty"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	Note        *string `json:"note,omitempty"`
	BranchID    string  `json:"branch_id"`
}

type MarkAttendanceRequest struct {
	StudentID string  `json:"student_id"`
	GroupID   string  `json:"group_id"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
	BranchID  string  `json:"branch_id"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{Field: "student_id", Message: "is required"})
	}
	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{Field: "group_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !Status(strings.ToUpper(r.Status)).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be PRESENT or ABSENT"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkAttendanceItem struct {
	StudentID string  `json:"student_id"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
}

type BulkAttendanceRequest struct {
	GroupID     string               `json:"group_id"`
	BranchID    string               `json:"branch_id"`
	Date        string               `json:"date"`
	Attendances []BulkAttendanceItem `json:"attendances"`
}

func (r *BulkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{Field: "group_id", Message: "is required"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(r.Attendances) == 0 {
		errs = append(errs, validator.ValidationError{Field: "attendances", Message: "must not be empty"})
	}
	for _, item := range r.Attendances {
		if validator.IsEmpty(item.StudentID) {
			errs = append(errs, validator.ValidationError{Field: "attendances", Message: "every item needs a student_id"})
			break
		}
		if !Status(strings.ToUpper(item.Status)).IsValid() {
			errs = append(errs, validator.ValidationError{Field: "attendances", Message: "every status must be PRESENT or ABSENT"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkAttendanceResponse struct {
	GroupID      string               `json:"group_id"`
	GroupName    string               `json:"group_name"`
	Date         string               `json:"date"`
	TotalMarked  int                  `json:"total_marked"`
	PresentCount int                  `json:"present_count"`
	AbsentCount  int                  `json:"absent_count"`
	Attendances  []AttendanceResponse `json:"attendances"`
}

// StudentMonthlySummary aggregates one student's attendance in one group
// over a calendar month.
type StudentMonthlySummary struct {
	StudentID    string `json:"student_id"`
	GroupID      string `json:"group_id"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	PresentCount int    `json:"present_count"`
	AbsentCount  int    `json:"absent_count"`
}
