package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryCash Category = "CASH"
	CategoryCard Category = "CARD"
)

func (c Category) IsValid() bool {
	return c == CategoryCash || c == CategoryCard
}

// Payment credits an amount toward a student's due for one group and one
// billing period. PaymentYear/PaymentMonth are the billing-period axis and
// are independent of CreatedAt: back-payments and advance payments are both
// ordinary rows.
type Payment struct {
	ID           string
	StudentID    string
	GroupID      string
	Amount       decimal.Decimal
	Description  *string
	Category     Category
	BranchID     string
	PaymentYear  int
	PaymentMonth int
	CreatedAt    time.Time
}
