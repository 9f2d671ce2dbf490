package payment

import "github.com/shopspring/decimal"

// BillingStatus describes how much of a (student, group, period) due has
// been covered by payments.
type BillingStatus string

const (
	StatusUnpaid  BillingStatus = "UNPAID"
	StatusPartial BillingStatus = "PARTIAL"
	StatusPaid    BillingStatus = "PAID"
)

// Status classifies a billing period: UNPAID when nothing was paid, PAID
// once the total covers the due, PARTIAL in between.
func Status(totalPaid, due decimal.Decimal) BillingStatus {
	if totalPaid.IsZero() {
		return StatusUnpaid
	}
	if totalPaid.GreaterThanOrEqual(due) {
		return StatusPaid
	}
	return StatusPartial
}

// Remaining returns the outstanding amount, never negative: overpayments
// clamp to zero.
func Remaining(due, totalPaid decimal.Decimal) decimal.Decimal {
	remaining := due.Sub(totalPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
