package salary

import (
	"testing"

	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestApplyPolicy_Fixed(t *testing.T) {
	paymentBased, total := ApplyPolicy(teacher.SalaryTypeFixed, d("1500000"), d("10"), d("9000000"))

	assert.True(t, paymentBased.IsZero())
	assert.True(t, total.Equal(d("1500000")), "fixed salary ignores student payments, got %s", total)

	// Same result regardless of collected payments.
	_, totalNoPayments := ApplyPolicy(teacher.SalaryTypeFixed, d("1500000"), d("10"), decimal.Zero)
	assert.True(t, totalNoPayments.Equal(total))
}

func TestApplyPolicy_Percentage(t *testing.T) {
	paymentBased, total := ApplyPolicy(teacher.SalaryTypePercentage, decimal.Zero, d("10"), d("500000"))

	assert.True(t, paymentBased.Equal(d("50000")), "got %s", paymentBased)
	assert.True(t, total.Equal(d("50000")))
}

func TestApplyPolicy_Percentage_NoPayments(t *testing.T) {
	paymentBased, total := ApplyPolicy(teacher.SalaryTypePercentage, decimal.Zero, d("25"), decimal.Zero)

	assert.True(t, paymentBased.IsZero())
	assert.True(t, total.IsZero())
}

func TestApplyPolicy_Mixed(t *testing.T) {
	paymentBased, total := ApplyPolicy(teacher.SalaryTypeMixed, d("1000000"), d("5"), d("2000000"))

	assert.True(t, paymentBased.Equal(d("100000")), "got %s", paymentBased)
	assert.True(t, total.Equal(d("1100000")), "got %s", total)
}

func TestApplyPolicy_Rounding(t *testing.T) {
	// 333333 * 7.5% = 24999.975, rounds half-up to 25000.
	paymentBased, _ := ApplyPolicy(teacher.SalaryTypePercentage, decimal.Zero, d("7.5"), d("333333"))
	assert.True(t, paymentBased.Equal(d("25000")), "got %s", paymentBased)

	// 100.01 * 12.5% = 12.50125, rounds to 12.50.
	paymentBased, _ = ApplyPolicy(teacher.SalaryTypePercentage, decimal.Zero, d("12.5"), d("100.01"))
	assert.True(t, paymentBased.Equal(d("12.50")), "got %s", paymentBased)
}

func TestApplyPolicy_UnknownTypeFallsBackToFixed(t *testing.T) {
	_, total := ApplyPolicy(teacher.SalaryType("HOURLY"), d("800000"), d("10"), d("5000000"))
	assert.True(t, total.Equal(d("800000")))
}

func TestRemainingAfter(t *testing.T) {
	assert.True(t, RemainingAfter(d("1000"), d("300")).Equal(d("700")))
	assert.True(t, RemainingAfter(d("1000"), d("1000")).IsZero())
	// Overpayment clamps at zero instead of going negative.
	assert.True(t, RemainingAfter(d("1000"), d("1500")).IsZero())
	assert.True(t, RemainingAfter(d("1000"), decimal.Zero).Equal(d("1000")))
}
