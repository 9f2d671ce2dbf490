package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/salary"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type salaryPaymentRepositoryImpl struct {
	db *database.DB
}

func NewSalaryPaymentRepository(db *database.DB) salary.SalaryPaymentRepository {
	return &salaryPaymentRepositoryImpl{db: db}
}

const salaryPaymentColumns = `id, teacher_id, year, month, amount, description, branch_id, created_at`

// Create implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) Create(ctx context.Context, p salary.SalaryPayment) (salary.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_payments (teacher_id, year, month, amount, description, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + salaryPaymentColumns

	var created salary.SalaryPayment
	err := q.QueryRow(ctx, query,
		p.TeacherID, p.Year, p.Month, p.Amount, p.Description, p.BranchID,
	).Scan(
		&created.ID, &created.TeacherID, &created.Year, &created.Month,
		&created.Amount, &created.Description, &created.BranchID, &created.CreatedAt,
	)
	if err != nil {
		return salary.SalaryPayment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}

	return created, nil
}

// GetByID implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) GetByID(ctx context.Context, id string) (salary.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryPaymentColumns + ` FROM salary_payments WHERE id = $1`

	var p salary.SalaryPayment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.TeacherID, &p.Year, &p.Month, &p.Amount, &p.Description, &p.BranchID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryPayment{}, salary.ErrSalaryPaymentNotFound
		}
		return salary.SalaryPayment{}, fmt.Errorf("failed to get salary payment by id: %w", err)
	}

	return p, nil
}

// Delete implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryPaymentNotFound
	}

	return nil
}

// ListByBranch implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) ListByBranch(ctx context.Context, branchID string) ([]salary.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryPaymentColumns + ` FROM salary_payments WHERE branch_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSalaryPayments(rows)
}

// ListByTeacher implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) ListByTeacher(ctx context.Context, teacherID string) ([]salary.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryPaymentColumns + ` FROM salary_payments WHERE teacher_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSalaryPayments(rows)
}

// ListByTeacherAndPeriod implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) ListByTeacherAndPeriod(ctx context.Context, teacherID string, year, month int) ([]salary.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryPaymentColumns + `
		FROM salary_payments
		WHERE teacher_id = $1 AND year = $2 AND month = $3
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, teacherID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSalaryPayments(rows)
}

// SumByTeacherAndPeriod implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) SumByTeacherAndPeriod(ctx context.Context, teacherID string, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_payments
		WHERE teacher_id = $1 AND year = $2 AND month = $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, teacherID, year, month).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum salary payments: %w", err)
	}

	return total, nil
}

// CountByTeacherAndPeriod implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) CountByTeacherAndPeriod(ctx context.Context, teacherID string, year, month int) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM salary_payments WHERE teacher_id = $1 AND year = $2 AND month = $3`
	err := q.QueryRow(ctx, query, teacherID, year, month).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count salary payments: %w", err)
	}

	return count, nil
}

// LastPaymentDate implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) LastPaymentDate(ctx context.Context, teacherID string, year, month int) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT MAX(created_at)
		FROM salary_payments
		WHERE teacher_id = $1 AND year = $2 AND month = $3
	`

	var last *time.Time
	err := q.QueryRow(ctx, query, teacherID, year, month).Scan(&last)
	if err != nil {
		return nil, fmt.Errorf("failed to get last salary payment date: %w", err)
	}

	return last, nil
}

// DistinctPeriodsByTeacher implements salary.SalaryPaymentRepository.
// Newest period first.
func (r *salaryPaymentRepositoryImpl) DistinctPeriodsByTeacher(ctx context.Context, teacherID string) ([]salary.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT year, month
		FROM salary_payments
		WHERE teacher_id = $1
		ORDER BY year DESC, month DESC
	`

	rows, err := q.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []salary.Period
	for rows.Next() {
		var p salary.Period
		if err := rows.Scan(&p.Year, &p.Month); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

// SumByBranchAndPeriod implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) SumByBranchAndPeriod(ctx context.Context, branchID string, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_payments
		WHERE branch_id = $1 AND year = $2 AND month = $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, branchID, year, month).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum salary payments by period: %w", err)
	}

	return total, nil
}

// SumByBranchAndCreatedBetween implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) SumByBranchAndCreatedBetween(ctx context.Context, branchID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_payments
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, branchID, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum salary payments by date range: %w", err)
	}

	return total, nil
}

// SumByBranch implements salary.SalaryPaymentRepository.
func (r *salaryPaymentRepositoryImpl) SumByBranch(ctx context.Context, branchID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM salary_payments WHERE branch_id = $1`, branchID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum salary payments by branch: %w", err)
	}

	return total, nil
}

func scanSalaryPayments(rows pgx.Rows) ([]salary.SalaryPayment, error) {
	var payments []salary.SalaryPayment
	for rows.Next() {
		var p salary.SalaryPayment
		err := rows.Scan(
			&p.ID, &p.TeacherID, &p.Year, &p.Month, &p.Amount, &p.Description, &p.BranchID, &p.CreatedAt,
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
