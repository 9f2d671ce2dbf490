package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/payment"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

const paymentColumns = `id, student_id, group_id, amount, description, category, branch_id, payment_year, payment_month, created_at`

// Create implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (student_id, group_id, amount, description, category, branch_id, payment_year, payment_month)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + paymentColumns

	var created payment.Payment
	err := q.QueryRow(ctx, query,
		p.StudentID, p.GroupID, p.Amount, p.Description, p.Category, p.BranchID, p.PaymentYear, p.PaymentMonth,
	).Scan(
		&created.ID, &created.StudentID, &created.GroupID, &created.Amount, &created.Description,
		&created.Category, &created.BranchID, &created.PaymentYear, &created.PaymentMonth, &created.CreatedAt,
	)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var p payment.Payment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.StudentID, &p.GroupID, &p.Amount, &p.Description,
		&p.Category, &p.BranchID, &p.PaymentYear, &p.PaymentMonth, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment by id: %w", err)
	}

	return p, nil
}

// UpdateAmount implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payments SET amount = $1 WHERE id = $2`, amount, id)
	if err != nil {
		return fmt.Errorf("failed to update payment amount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}

// ListByBranch implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByBranch(ctx context.Context, branchID string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE branch_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByBranchAndCategory implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByBranchAndCategory(ctx context.Context, branchID string, category payment.Category) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE branch_id = $1 AND category = $2 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, branchID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByBranchCategoryAndPeriod implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByBranchCategoryAndPeriod(ctx context.Context, branchID string, category payment.Category, year, month int) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE branch_id = $1 AND category = $2 AND payment_year = $3 AND payment_month = $4
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, branchID, category, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByBranchAndPeriod implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByBranchAndPeriod(ctx context.Context, branchID string, year, month int) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE branch_id = $1 AND payment_year = $2 AND payment_month = $3
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, branchID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByBranchAndCreatedBetween implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, branchID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByStudent implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByStudent(ctx context.Context, studentID string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE student_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListRecentByBranch implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListRecentByBranch(ctx context.Context, branchID string, limit int) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE branch_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := q.Query(ctx, query, branchID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// TotalPaid implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) TotalPaid(ctx context.Context, studentID, groupID string, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE student_id = $1 AND group_id = $2 AND payment_year = $3 AND payment_month = $4
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, studentID, groupID, year, month).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}

	return total, nil
}

// TotalPaidAllTime implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) TotalPaidAllTime(ctx context.Context, studentID, groupID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE student_id = $1 AND group_id = $2
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, studentID, groupID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}

	return total, nil
}

// SumByBranchAndPeriod implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) SumByBranchAndPeriod(ctx context.Context, branchID string, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE branch_id = $1 AND payment_year = $2 AND payment_month = $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, branchID, year, month).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments by period: %w", err)
	}

	return total, nil
}

// SumByBranchAndCreatedBetween implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) SumByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, branchID, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments by date range: %w", err)
	}

	return total, nil
}

// SumByBranch implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) SumByBranch(ctx context.Context, branchID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE branch_id = $1`, branchID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments by branch: %w", err)
	}

	return total, nil
}

func scanPayments(rows pgx.Rows) ([]payment.Payment, error) {
	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.GroupID, &p.Amount, &p.Description,
			&p.Category, &p.BranchID, &p.PaymentYear, &p.PaymentMonth, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
