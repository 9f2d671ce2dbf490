package report

import (
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// All report windows slice on createdAt (transaction time), never on the
// billing period.

type PaymentReport struct {
	BranchID      string          `json:"branch_id"`
	Date          *string         `json:"date,omitempty"`
	Year          *int            `json:"year,omitempty"`
	Month         *int            `json:"month,omitempty"`
	StartDate     *string         `json:"start_date,omitempty"`
	EndDate       *string         `json:"end_date,omitempty"`
	TotalPayments decimal.Decimal `json:"total_payments"`
}

type ExpenseReport struct {
	BranchID        string          `json:"branch_id"`
	Date            *string         `json:"date,omitempty"`
	Year            *int            `json:"year,omitempty"`
	Month           *int            `json:"month,omitempty"`
	StartDate       *string         `json:"start_date,omitempty"`
	EndDate         *string         `json:"end_date,omitempty"`
	RegularExpenses decimal.Decimal `json:"regular_expenses"`
	SalaryExpenses  decimal.Decimal `json:"salary_expenses"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
}

type FinancialSummary struct {
	BranchID        string          `json:"branch_id"`
	Year            *int            `json:"year,omitempty"`
	Month           *int            `json:"month,omitempty"`
	StartDate       *string         `json:"start_date,omitempty"`
	EndDate         *string         `json:"end_date,omitempty"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	RegularExpenses decimal.Decimal `json:"regular_expenses"`
	SalaryPayments  decimal.Decimal `json:"salary_payments"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

type PeriodRequest struct {
	BranchID string
	Year     int
	Month    int
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}
	if !validator.IsValidBillingYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if !validator.IsValidBillingMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeRequest struct {
	BranchID  string
	StartDate string
	EndDate   string
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
