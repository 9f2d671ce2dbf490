package dashboard

import "github.com/shopspring/decimal"

// Stats is the landing-page summary. SUPER_ADMIN sees totals across every
// branch, ADMIN sees only the assigned branch.
type Stats struct {
	TotalBranches  int64           `json:"total_branches"`
	TotalUsers     int64           `json:"total_users"`
	TotalStudents  int64           `json:"total_students"`
	TotalTeachers  int64           `json:"total_teachers"`
	TotalGroups    int64           `json:"total_groups"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}
