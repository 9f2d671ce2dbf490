package auth

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	ListByBranchID(ctx context.Context, branchID string) ([]User, error)
	Update(ctx context.Context, req UpdateUserRequest, passwordHash *string) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountByBranchID(ctx context.Context, branchID string) (int64, error)
}
