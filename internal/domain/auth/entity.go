package auth

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	BranchID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
