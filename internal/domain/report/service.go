package report

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type ReportService interface {
	DailyPayments(ctx context.Context, caller auth.Caller, branchID, date string) (PaymentReport, error)
	MonthlyPayments(ctx context.Context, caller auth.Caller, req PeriodRequest) (PaymentReport, error)
	RangePayments(ctx context.Context, caller auth.Caller, req RangeRequest) (PaymentReport, error)

	DailyExpenses(ctx context.Context, caller auth.Caller, branchID, date string) (ExpenseReport, error)
	MonthlyExpenses(ctx context.Context, caller auth.Caller, req PeriodRequest) (ExpenseReport, error)
	RangeExpenses(ctx context.Context, caller auth.Caller, req RangeRequest) (ExpenseReport, error)

	MonthlySummary(ctx context.Context, caller auth.Caller, req PeriodRequest) (FinancialSummary, error)
	RangeSummary(ctx context.Context, caller auth.Caller, req RangeRequest) (FinancialSummary, error)
	AllTimeSummary(ctx context.Context, caller auth.Caller, branchID string) (FinancialSummary, error)
}
