package expense

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type ExpenseService interface {
	Create(ctx context.Context, caller auth.Caller, req CreateExpenseRequest) (ExpenseResponse, error)
	GetByID(ctx context.Context, caller auth.Caller, id string) (ExpenseResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
	ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]ExpenseResponse, error)
	// ListByBranchAndDateRange filters on the recording timestamp. Both dates
	// are YYYY-MM-DD and inclusive.
	ListByBranchAndDateRange(ctx context.Context, caller auth.Caller, branchID, startDate, endDate string) ([]ExpenseResponse, error)
}
