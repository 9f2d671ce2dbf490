package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements auth.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, user auth.User) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, role, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, password_hash, first_name, last_name, role, branch_id, created_at, updated_at
	`

	var created auth.User
	err := q.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Role, user.BranchID,
	).Scan(
		&created.ID, &created.Username, &created.PasswordHash, &created.FirstName,
		&created.LastName, &created.Role, &created.BranchID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return auth.User{}, auth.ErrUsernameExists
		}
		return auth.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByID implements auth.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, first_name, last_name, role, branch_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user auth.User
	err := q.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.Role, &user.BranchID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByUsername implements auth.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, first_name, last_name, role, branch_id, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user auth.User
	err := q.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.Role, &user.BranchID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// List implements auth.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, first_name, last_name, role, branch_id, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListByBranchID implements auth.UserRepository.
func (r *userRepositoryImpl) ListByBranchID(ctx context.Context, branchID string) ([]auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, first_name, last_name, role, branch_id, created_at, updated_at
		FROM users
		WHERE branch_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Update implements auth.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, req auth.UpdateUserRequest, passwordHash *string) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if passwordHash != nil {
		setClauses = append(setClauses, fmt.Sprintf("password_hash = $%d", argIdx))
		args = append(args, *passwordHash)
		argIdx++
	}
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
	if req.BranchID != nil {
		setClauses = append(setClauses, fmt.Sprintf("branch_id = $%d", argIdx))
		args = append(args, *req.BranchID)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

// Delete implements auth.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

// CountAll implements auth.UserRepository.
func (r *userRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

// CountByBranchID implements auth.UserRepository.
func (r *userRepositoryImpl) CountByBranchID(ctx context.Context, branchID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE branch_id = $1`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users by branch: %w", err)
	}

	return count, nil
}

func scanUsers(rows pgx.Rows) ([]auth.User, error) {
	var users []auth.User
	for rows.Next() {
		var user auth.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.PasswordHash, &user.FirstName,
			&user.LastName, &user.Role, &user.BranchID, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
