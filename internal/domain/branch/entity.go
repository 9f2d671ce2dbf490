package branch

import "time"

// Branch is the tenant boundary: every financial row belongs to exactly one.
type Branch struct {
	ID        string
	Name      string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
