package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/expense"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (description, amount, category, branch_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, description, amount, category, branch_id, created_at
	`

	var created expense.Expense
	err := q.QueryRow(ctx, query, e.Description, e.Amount, e.Category, e.BranchID).Scan(
		&created.ID, &created.Description, &created.Amount, &created.Category, &created.BranchID, &created.CreatedAt,
	)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

// GetByID implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, description, amount, category, branch_id, created_at
		FROM expenses
		WHERE id = $1
	`

	var e expense.Expense
	err := q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.BranchID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense by id: %w", err)
	}

	return e, nil
}

// Delete implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

// ListByBranch implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListByBranch(ctx context.Context, branchID string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, description, amount, category, branch_id, created_at
		FROM expenses
		WHERE branch_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// ListByBranchAndCreatedBetween implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, description, amount, category, branch_id, created_at
		FROM expenses
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, branchID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// SumByBranchAndCreatedBetween implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) SumByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, branchID, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses by date range: %w", err)
	}

	return total, nil
}

// SumByBranch implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) SumByBranch(ctx context.Context, branchID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE branch_id = $1`, branchID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses by branch: %w", err)
	}

	return total, nil
}

func scanExpenses(rows pgx.Rows) ([]expense.Expense, error) {
	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.BranchID, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}
