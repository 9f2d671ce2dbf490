package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/educenter/educenter-backend-go/internal/domain/group"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type groupRepositoryImpl struct {
	db *database.DB
}

func NewGroupRepository(db *database.DB) group.GroupRepository {
	return &groupRepositoryImpl{db: db}
}

// Create implements group.GroupRepository.
func (r *groupRepositoryImpl) Create(ctx context.Context, g group.Group) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO groups (name, price, teacher_id, branch_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, price, teacher_id, branch_id, active, created_at, updated_at
	`

	var created group.Group
	err := q.QueryRow(ctx, query, g.Name, g.Price, g.TeacherID, g.BranchID).Scan(
		&created.ID, &created.Name, &created.Price, &created.TeacherID,
		&created.BranchID, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return group.Group{}, fmt.Errorf("failed to create group: %w", err)
	}

	return created, nil
}

// GetByID implements group.GroupRepository. The active flag is not filtered
// here so soft-deleted groups still resolve for historical rows.
func (r *groupRepositoryImpl) GetByID(ctx context.Context, id string) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, price, teacher_id, branch_id, active, created_at, updated_at
		FROM groups
		WHERE id = $1
	`

	var g group.Group
	err := q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.Price, &g.TeacherID, &g.BranchID, &g.Active, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("failed to get group by id: %w", err)
	}

	return g, nil
}

// GetActiveByBranchID implements group.GroupRepository.
func (r *groupRepositoryImpl) GetActiveByBranchID(ctx context.Context, branchID string) ([]group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, price, teacher_id, branch_id, active, created_at, updated_at
		FROM groups
		WHERE branch_id = $1 AND active = TRUE
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGroups(rows)
}

// GetActiveByTeacherID implements group.GroupRepository.
func (r *groupRepositoryImpl) GetActiveByTeacherID(ctx context.Context, teacherID string) ([]group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, price, teacher_id, branch_id, active, created_at, updated_at
		FROM groups
		WHERE teacher_id = $1 AND active = TRUE
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGroups(rows)
}

// Update implements group.GroupRepository.
func (r *groupRepositoryImpl) Update(ctx context.Context, req group.UpdateGroupRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Price != nil {
		setClauses = append(setClauses, fmt.Sprintf("price = $%d", argIdx))
		args = append(args, *req.Price)
		argIdx++
	}
	if req.TeacherID != nil {
		setClauses = append(setClauses, fmt.Sprintf("teacher_id = $%d", argIdx))
		args = append(args, *req.TeacherID)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE groups SET %s WHERE id = $%d AND active = TRUE", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}

	return nil
}

// SoftDelete implements group.GroupRepository.
func (r *groupRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE groups SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active = TRUE`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}

	return nil
}

// CountAll implements group.GroupRepository.
func (r *groupRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM groups WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count groups: %w", err)
	}

	return count, nil
}

// CountActiveByBranchID implements group.GroupRepository.
func (r *groupRepositoryImpl) CountActiveByBranchID(ctx context.Context, branchID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM groups WHERE branch_id = $1 AND active = TRUE`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count groups by branch: %w", err)
	}

	return count, nil
}

// AddStudent implements group.GroupRepository.
func (r *groupRepositoryImpl) AddStudent(ctx context.Context, groupID, studentID string) error {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO group_students (group_id, student_id) VALUES ($1, $2)`

	_, err := q.Exec(ctx, query, groupID, studentID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return group.ErrStudentAlreadyInGroup
		}
		return fmt.Errorf("failed to enroll student: %w", err)
	}

	return nil
}

// RemoveStudent implements group.GroupRepository.
func (r *groupRepositoryImpl) RemoveStudent(ctx context.Context, groupID, studentID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM group_students WHERE group_id = $1 AND student_id = $2`, groupID, studentID)
	if err != nil {
		return fmt.Errorf("failed to unenroll student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrStudentNotEnrolled
	}

	return nil
}

// IsStudentEnrolled implements group.GroupRepository.
func (r *groupRepositoryImpl) IsStudentEnrolled(ctx context.Context, groupID, studentID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM group_students WHERE group_id = $1 AND student_id = $2)`
	err := q.QueryRow(ctx, query, groupID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return exists, nil
}

// GetStudentIDs implements group.GroupRepository.
func (r *groupRepositoryImpl) GetStudentIDs(ctx context.Context, groupID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT student_id
		FROM group_students
		WHERE group_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

// GetGroupIDsByStudent implements group.GroupRepository.
func (r *groupRepositoryImpl) GetGroupIDsByStudent(ctx context.Context, studentID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT group_id
		FROM group_students
		WHERE student_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

// CountStudents implements group.GroupRepository.
func (r *groupRepositoryImpl) CountStudents(ctx context.Context, groupID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM group_students WHERE group_id = $1`, groupID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count group students: %w", err)
	}

	return count, nil
}

func scanGroups(rows pgx.Rows) ([]group.Group, error) {
	var groups []group.Group
	for rows.Next() {
		var g group.Group
		err := rows.Scan(
			&g.ID, &g.Name, &g.Price, &g.TeacherID, &g.BranchID, &g.Active, &g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

func scanIDs(rows pgx.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
