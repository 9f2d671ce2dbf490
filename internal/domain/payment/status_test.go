package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name      string
		totalPaid string
		due       string
		want      BillingStatus
	}{
		{"nothing paid", "0", "500000", StatusUnpaid},
		{"partially paid", "200000", "500000", StatusPartial},
		{"exactly paid", "500000", "500000", StatusPaid},
		{"overpaid", "600000", "500000", StatusPaid},
		{"zero due and nothing paid", "0", "0", StatusUnpaid},
		{"zero due with payment", "100", "0", StatusPaid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Status(dec(c.totalPaid), dec(c.due)))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.True(t, Remaining(dec("500000"), dec("200000")).Equal(dec("300000")))
	assert.True(t, Remaining(dec("500000"), dec("500000")).IsZero())
	assert.True(t, Remaining(dec("500000"), dec("700000")).IsZero())
}
