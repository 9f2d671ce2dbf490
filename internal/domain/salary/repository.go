package salary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SalaryPaymentRepository interface {
	Create(ctx context.Context, p SalaryPayment) (SalaryPayment, error)
	GetByID(ctx context.Context, id string) (SalaryPayment, error)
	Delete(ctx context.Context, id string) error

	ListByBranch(ctx context.Context, branchID string) ([]SalaryPayment, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]SalaryPayment, error)
	ListByTeacherAndPeriod(ctx context.Context, teacherID string, year, month int) ([]SalaryPayment, error)

	SumByTeacherAndPeriod(ctx context.Context, teacherID string, year, month int) (decimal.Decimal, error)
	CountByTeacherAndPeriod(ctx context.Context, teacherID string, year, month int) (int, error)
	LastPaymentDate(ctx context.Context, teacherID string, year, month int) (*time.Time, error)
	DistinctPeriodsByTeacher(ctx context.Context, teacherID string) ([]Period, error)

	SumByBranchAndPeriod(ctx context.Context, branchID string, year, month int) (decimal.Decimal, error)
	SumByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) (decimal.Decimal, error)
	SumByBranch(ctx context.Context, branchID string) (decimal.Decimal, error)
}
