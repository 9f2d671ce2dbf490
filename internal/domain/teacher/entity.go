package teacher

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryType selects the compensation policy applied to a teacher.
type SalaryType string

const (
	SalaryTypeFixed      SalaryType = "FIXED"
	SalaryTypePercentage SalaryType = "PERCENTAGE"
	SalaryTypeMixed      SalaryType = "MIXED"
)

func (t SalaryType) IsValid() bool {
	switch t {
	case SalaryTypeFixed, SalaryTypePercentage, SalaryTypeMixed:
		return true
	}
	return false
}

type Teacher struct {
	ID                string
	FirstName         string
	LastName          string
	Phone             *string
	Email             *string
	BaseSalary        decimal.Decimal
	PaymentPercentage decimal.Decimal
	SalaryType        SalaryType
	BranchID          string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (t Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
