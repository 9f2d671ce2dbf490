package expense

import (
	"context"
	"strings"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/branch"
	"github.com/educenter/educenter-backend-go/internal/domain/expense"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/educenter/educenter-backend-go/internal/service/access"
)

type ExpenseServiceImpl struct {
	db          *database.DB
	expenseRepo expense.ExpenseRepository
	branchRepo  branch.BranchRepository
	guard       *access.Guard
}

func NewExpenseService(
	db *database.DB,
	expenseRepo expense.ExpenseRepository,
	branchRepo branch.BranchRepository,
	guard *access.Guard,
) expense.ExpenseService {
	return &ExpenseServiceImpl{
		db:          db,
		expenseRepo: expenseRepo,
		branchRepo:  branchRepo,
		guard:       guard,
	}
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, caller auth.Caller, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return expense.ExpenseResponse{}, err
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return expense.ExpenseResponse{}, err
	}

	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    expense.Category(strings.ToUpper(req.Category)),
		BranchID:    req.BranchID,
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toExpenseResponse(created), nil
}

func (s *ExpenseServiceImpl) GetByID(ctx context.Context, caller auth.Caller, id string) (expense.ExpenseResponse, error) {
	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	if err := s.guard.Authorize(caller, e.BranchID); err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toExpenseResponse(e), nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, caller auth.Caller, id string) error {
	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, e.BranchID); err != nil {
		return err
	}

	return s.expenseRepo.Delete(ctx, id)
}

func (s *ExpenseServiceImpl) ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]expense.ExpenseResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}

	return responses, nil
}

func (s *ExpenseServiceImpl) ListByBranchAndDateRange(ctx context.Context, caller auth.Caller, branchID, startDate, endDate string) ([]expense.ExpenseResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	var errs validator.ValidationErrors
	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	expenses, err := s.expenseRepo.ListByBranchAndCreatedBetween(ctx, branchID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}

	return responses, nil
}

func toExpenseResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
		BranchID:    e.BranchID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
