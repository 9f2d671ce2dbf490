package salary

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type SalaryService interface {
	// Calculate recomputes a teacher's salary breakdown for one (year, month)
	// from the payment ledger. Nothing is stored.
	Calculate(ctx context.Context, caller auth.Caller, teacherID string, year, month int) (CalculationResponse, error)
	// CalculateForBranch runs the same computation for every active teacher
	// of the branch.
	CalculateForBranch(ctx context.Context, caller auth.Caller, branchID string, year, month int) ([]CalculationResponse, error)

	// Disburse appends a payout row against the computed salary.
	Disburse(ctx context.Context, caller auth.Caller, req CreateSalaryPaymentRequest) (SalaryPaymentResponse, error)
	// Subtract records a manual deduction. It shares the append path with
	// Disburse, so the period's paid total rises either way.
	Subtract(ctx context.Context, caller auth.Caller, req CreateSalaryPaymentRequest) (SalaryPaymentResponse, error)
	DeletePayment(ctx context.Context, caller auth.Caller, id string) error

	ListByTeacher(ctx context.Context, caller auth.Caller, teacherID string) ([]SalaryPaymentResponse, error)
	ListByTeacherAndPeriod(ctx context.Context, caller auth.Caller, teacherID string, year, month int) ([]SalaryPaymentResponse, error)
	ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]SalaryPaymentResponse, error)
	History(ctx context.Context, caller auth.Caller, teacherID string) ([]HistoryEntry, error)
}
