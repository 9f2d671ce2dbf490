package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Me(ctx context.Context, caller Caller) (UserResponse, error)

	CreateUser(ctx context.Context, caller Caller, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, caller Caller, id string) (UserResponse, error)
	ListUsers(ctx context.Context, caller Caller) ([]UserResponse, error)
	ListUsersByBranch(ctx context.Context, caller Caller, branchID string) ([]UserResponse, error)
	UpdateUser(ctx context.Context, caller Caller, req UpdateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, caller Caller, id string) error
}
