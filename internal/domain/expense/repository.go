package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	Delete(ctx context.Context, id string) error
	ListByBranch(ctx context.Context, branchID string) ([]Expense, error)
	ListByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) ([]Expense, error)

	SumByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) (decimal.Decimal, error)
	SumByBranch(ctx context.Context, branchID string) (decimal.Decimal, error)
}
