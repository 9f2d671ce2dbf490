package salary

import (
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryPaymentRequest struct {
	TeacherID   string          `json:"teacher_id"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	BranchID    string          `json:"branch_id"`
}

func (r *CreateSalaryPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if !validator.IsValidBillingYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if !validator.IsValidBillingMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsPositiveAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryPaymentResponse struct {
	ID          string          `json:"id"`
	TeacherID   string          `json:"teacher_id"`
	TeacherName string          `json:"teacher_name,omitempty"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	BranchID    string          `json:"branch_id"`
	BranchName  string          `json:"branch_name,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// GroupSalaryInfo is the per-group audit line of a salary calculation.
type GroupSalaryInfo struct {
	GroupID          string          `json:"group_id"`
	GroupName        string          `json:"group_name"`
	PaidStudentCount int             `json:"paid_student_count"`
	GroupPayments    decimal.Decimal `json:"group_payments"`
	TotalStudents    int             `json:"total_students"`
	GroupPrice       decimal.Decimal `json:"group_price"`
}

// CalculationResponse is a teacher's salary breakdown for one (year, month),
// recomputed from the payment ledger on every call.
type CalculationResponse struct {
	TeacherID            string            `json:"teacher_id"`
	TeacherName          string            `json:"teacher_name"`
	Year                 int               `json:"year"`
	Month                int               `json:"month"`
	BaseSalary           decimal.Decimal   `json:"base_salary"`
	PaymentBasedSalary   decimal.Decimal   `json:"payment_based_salary"`
	TotalSalary          decimal.Decimal   `json:"total_salary"`
	TotalStudentPayments decimal.Decimal   `json:"total_student_payments"`
	TotalStudents        int               `json:"total_students"`
	AlreadyPaid          decimal.Decimal   `json:"already_paid"`
	RemainingAmount      decimal.Decimal   `json:"remaining_amount"`
	BranchID             string            `json:"branch_id"`
	BranchName           string            `json:"branch_name"`
	Groups               []GroupSalaryInfo `json:"groups"`
}

// HistoryEntry pairs a recomputed salary calculation with the disbursement
// ledger totals for one past period.
type HistoryEntry struct {
	TeacherID       string          `json:"teacher_id"`
	TeacherName     string          `json:"teacher_name"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	TotalSalary     decimal.Decimal `json:"total_salary"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	FullyPaid       bool            `json:"fully_paid"`
	LastPaymentDate *string         `json:"last_payment_date,omitempty"`
	PaymentCount    int             `json:"payment_count"`
}
