package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already taken")
	ErrBranchAccessDenied = errors.New("access to this branch is denied")
	ErrSuperAdminRequired = errors.New("super admin privileges required")
	ErrBranchNotAssigned  = errors.New("admin account has no branch assigned")
	ErrCannotDeleteSelf   = errors.New("users cannot delete their own account")
)
