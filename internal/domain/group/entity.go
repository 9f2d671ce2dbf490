package group

import (
	"time"

	"github.com/shopspring/decimal"
)

// Group is a class taught by one teacher. Price is the monthly due per
// enrolled student for one billing period.
type Group struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	TeacherID string
	BranchID  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enrollment links a student to a group. Kept as a separate relation instead
// of object references on either side.
type Enrollment struct {
	GroupID   string
	StudentID string
	CreatedAt time.Time
}
