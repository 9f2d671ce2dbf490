package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment is one disbursement against a teacher's computed salary for
// a (year, month). The ledger is append-only: manual subtractions append a
// row through the same path, so every row raises the period's alreadyPaid.
type SalaryPayment struct {
	ID          string
	TeacherID   string
	Year        int
	Month       int
	Amount      decimal.Decimal
	Description *string
	BranchID    string
	CreatedAt   time.Time
}

// Period is one distinct (year, month) with at least one disbursement.
type Period struct {
	Year  int
	Month int
}
