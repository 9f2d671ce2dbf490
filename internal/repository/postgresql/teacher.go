package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teacherRepositoryImpl struct {
	db *database.DB
}

func NewTeacherRepository(db *database.DB) teacher.TeacherRepository {
	return &teacherRepositoryImpl{db: db}
}

// Create implements teacher.TeacherRepository.
func (r *teacherRepositoryImpl) Create(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teachers (first_name, last_name, phone, email, base_salary, payment_percentage, salary_type, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, first_name, last_name, phone, email, base_salary, payment_percentage, salary_type,
			branch_id, active, created_at, updated_at
	`

	var created teacher.Teacher
	err := q.QueryRow(ctx, query,
		t.FirstName, t.LastName, t.Phone, t.Email, t.BaseSalary, t.PaymentPercentage, t.SalaryType, t.BranchID,
	).Scan(
		&created.ID, &created.FirstName, &created.LastName, &created.Phone, &created.Email,
		&created.BaseSalary, &created.PaymentPercentage, &created.SalaryType,
		&created.BranchID, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return teacher.Teacher{}, fmt.Errorf("failed to create teacher: %w", err)
	}

	return created, nil
}

// GetByID implements teacher.TeacherRepository. The active flag is not
// filtered here so soft-deleted teachers still resolve for historical rows.
func (r *teacherRepositoryImpl) GetByID(ctx context.Context, id string) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, phone, email, base_salary, payment_percentage, salary_type,
			branch_id, active, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`

	var t teacher.Teacher
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Phone, &t.Email,
		&t.BaseSalary, &t.PaymentPercentage, &t.SalaryType,
		&t.BranchID, &t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher by id: %w", err)
	}

	return t, nil
}

// GetActiveByBranchID implements teacher.TeacherRepository.
func (r *teacherRepositoryImpl) GetActiveByBranchID(ctx context.Context, branchID string) ([]teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, phone, email, base_salary, payment_percentage, salary_type,
			branch_id, active, created_at, updated_at
		FROM teachers
		WHERE branch_id = $1 AND active = TRUE
		ORDER BY first_name, last_name
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []teacher.Teacher
	for rows.Next() {
		var t teacher.Teacher
		err := rows.Scan(
			&t.ID, &t.FirstName, &t.LastName, &t.Phone, &t.Email,
			&t.BaseSalary, &t.PaymentPercentage, &t.SalaryType,
			&t.BranchID, &t.Active, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Update implements teacher.TeacherRepository.
func (r *teacherRepositoryImpl) Update(ctx context.Context, req teacher.UpdateTeacherRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.FirstName != nil {
		setClauses = append(setClauses, fmt.Sprintf("first_name = $%d", argIdx))
		args = append(args, *req.FirstName)
		argIdx++
	}
	if req.LastName != nil {
		setClauses = append(setClauses, fmt.Sprintf("last_name = $%d", argIdx))
		args = append(args, *req.LastName)
		argIdx++
	}
	if req.Phone != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.BaseSalary != nil {
		setClauses = append(setClauses, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.PaymentPercentage != nil {
		setClauses = append(setClauses, fmt.Sprintf("payment_percentage = $%d", argIdx))
		args = append(args, *req.PaymentPercentage)
		argIdx++
	}
	if req.SalaryType != nil {
		setClauses = append(setClauses, fmt.Sprintf("salary_type = $%d", argIdx))
		args = append(args, *req.SalaryType)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE teachers SET %s WHERE id = $%d AND active = TRUE", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}

	return nil
}

// SoftDelete implements teacher.TeacherRepository.
func (r *teacherRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE teachers SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active = TRUE`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}

	return nil
}

// CountAll implements teacher.TeacherRepository.
func (r *teacherRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM teachers WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count teachers: %w", err)
	}

	return count, nil
}

// CountActiveByBranchID implements teacher.TeacherRepository.
func (r *teacherRepositoryImpl) CountActiveByBranchID(ctx context.Context, branchID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM teachers WHERE branch_id = $1 AND active = TRUE`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count teachers by branch: %w", err)
	}

	return count, nil
}
