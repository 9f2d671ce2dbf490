package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error
	Delete(ctx context.Context, id string) error

	ListByBranch(ctx context.Context, branchID string) ([]Payment, error)
	ListByBranchAndCategory(ctx context.Context, branchID string, category Category) ([]Payment, error)
	ListByBranchCategoryAndPeriod(ctx context.Context, branchID string, category Category, year, month int) ([]Payment, error)
	ListByBranchAndPeriod(ctx context.Context, branchID string, year, month int) ([]Payment, error)
	ListByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) ([]Payment, error)
	ListByStudent(ctx context.Context, studentID string) ([]Payment, error)
	ListRecentByBranch(ctx context.Context, branchID string, limit int) ([]Payment, error)

	// TotalPaid sums every payment credited to (student, group) for one
	// billing period; partial payments accumulate.
	TotalPaid(ctx context.Context, studentID, groupID string, year, month int) (decimal.Decimal, error)
	// TotalPaidAllTime sums across all billing periods.
	TotalPaidAllTime(ctx context.Context, studentID, groupID string) (decimal.Decimal, error)

	SumByBranchAndPeriod(ctx context.Context, branchID string, year, month int) (decimal.Decimal, error)
	SumByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) (decimal.Decimal, error)
	SumByBranch(ctx context.Context, branchID string) (decimal.Decimal, error)
}
