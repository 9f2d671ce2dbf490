package salary

import (
	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// policyFunc computes (paymentBasedSalary, totalSalary) for one compensation
// policy from the teacher's base salary, percentage and the month's routed
// student payments.
type policyFunc func(baseSalary, percentage, totalStudentPayments decimal.Decimal) (paymentBased, total decimal.Decimal)

func fixedSalary(baseSalary, _, _ decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return decimal.Zero, baseSalary
}

func percentageSalary(_, percentage, totalStudentPayments decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	paymentBased := share(totalStudentPayments, percentage)
	return paymentBased, paymentBased
}

func mixedSalary(baseSalary, percentage, totalStudentPayments decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	paymentBased := share(totalStudentPayments, percentage)
	return paymentBased, baseSalary.Add(paymentBased)
}

// share is percentage% of payments, rounded half-up to 2 decimals.
func share(payments, percentage decimal.Decimal) decimal.Decimal {
	return payments.Mul(percentage).Div(hundred).Round(2)
}

var policies = map[teacher.SalaryType]policyFunc{
	teacher.SalaryTypeFixed:      fixedSalary,
	teacher.SalaryTypePercentage: percentageSalary,
	teacher.SalaryTypeMixed:      mixedSalary,
}

// ApplyPolicy dispatches on the teacher's salary type. An unknown type falls
// back to the fixed policy, and a missing percentage computes as zero rather
// than failing.
func ApplyPolicy(salaryType teacher.SalaryType, baseSalary, percentage, totalStudentPayments decimal.Decimal) (paymentBased, total decimal.Decimal) {
	fn, ok := policies[salaryType]
	if !ok {
		fn = fixedSalary
	}
	return fn(baseSalary, percentage, totalStudentPayments)
}

// RemainingAfter clamps totalSalary minus alreadyPaid at zero.
func RemainingAfter(totalSalary, alreadyPaid decimal.Decimal) decimal.Decimal {
	remaining := totalSalary.Sub(alreadyPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
