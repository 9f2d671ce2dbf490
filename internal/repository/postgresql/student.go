package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/educenter/educenter-backend-go/internal/domain/student"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type studentRepositoryImpl struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepositoryImpl{db: db}
}

// Create implements student.StudentRepository.
func (r *studentRepositoryImpl) Create(ctx context.Context, s student.Student) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO students (first_name, last_name, phone, parent_phone, branch_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, phone, parent_phone, branch_id, active, created_at, updated_at
	`

	var created student.Student
	err := q.QueryRow(ctx, query, s.FirstName, s.LastName, s.Phone, s.ParentPhone, s.BranchID).Scan(
		&created.ID, &created.FirstName, &created.LastName, &created.Phone, &created.ParentPhone,
		&created.BranchID, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, fmt.Errorf("failed to create student: %w", err)
	}

	return created, nil
}

// GetByID implements student.StudentRepository. The active flag is not
// filtered here so soft-deleted students still resolve for historical rows.
func (r *studentRepositoryImpl) GetByID(ctx context.Context, id string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, phone, parent_phone, branch_id, active, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var s student.Student
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Phone, &s.ParentPhone,
		&s.BranchID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student by id: %w", err)
	}

	return s, nil
}

// GetActiveByBranchID implements student.StudentRepository.
func (r *studentRepositoryImpl) GetActiveByBranchID(ctx context.Context, branchID string) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, phone, parent_phone, branch_id, active, created_at, updated_at
		FROM students
		WHERE branch_id = $1 AND active = TRUE
		ORDER BY first_name, last_name
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// SearchByName implements student.StudentRepository.
func (r *studentRepositoryImpl) SearchByName(ctx context.Context, branchID, name string) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, phone, parent_phone, branch_id, active, created_at, updated_at
		FROM students
		WHERE branch_id = $1 AND active = TRUE
			AND (first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%')
		ORDER BY first_name, last_name
	`

	rows, err := q.Query(ctx, query, branchID, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update implements student.StudentRepository.
func (r *studentRepositoryImpl) Update(ctx context.Context, req student.UpdateStudentRequest) error {
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
	if req.ParentPhone != nil {
		setClauses = append(setClauses, fmt.Sprintf("parent_phone = $%d", argIdx))
		args = append(args, *req.ParentPhone)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE students SET %s WHERE id = $%d AND active = TRUE", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// SoftDelete implements student.StudentRepository.
func (r *studentRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE students SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active = TRUE`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// CountAll implements student.StudentRepository.
func (r *studentRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}

	return count, nil
}

// CountActiveByBranchID implements student.StudentRepository.
func (r *studentRepositoryImpl) CountActiveByBranchID(ctx context.Context, branchID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE branch_id = $1 AND active = TRUE`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students by branch: %w", err)
	}

	return count, nil
}

func scanStudents(rows pgx.Rows) ([]student.Student, error) {
	var students []student.Student
	for rows.Next() {
		var s student.Student
		err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Phone, &s.ParentPhone,
			&s.BranchID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
