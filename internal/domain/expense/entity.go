package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryRent        Category = "RENT"
	CategoryUtilities   Category = "UTILITIES"
	CategoryEquipment   Category = "EQUIPMENT"
	CategoryMarketing   Category = "MARKETING"
	CategoryMaintenance Category = "MAINTENANCE"
	CategoryOther       Category = "OTHER"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryRent, CategoryUtilities, CategoryEquipment, CategoryMarketing, CategoryMaintenance, CategoryOther:
		return true
	}
	return false
}

// Expense is a non-payroll branch cost. Teacher salary disbursements are
// accounted separately and only merge with expenses in reports.
type Expense struct {
	ID          string
	Description *string
	Amount      decimal.Decimal
	Category    Category
	BranchID    string
	CreatedAt   time.Time
}
