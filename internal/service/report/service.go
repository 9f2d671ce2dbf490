package report

import (
	"context"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/expense"
	"github.com/educenter/educenter-backend-go/internal/domain/payment"
	"github.com/educenter/educenter-backend-go/internal/domain/report"
	"github.com/educenter/educenter-backend-go/internal/domain/salary"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/educenter/educenter-backend-go/internal/service/access"
	"github.com/shopspring/decimal"
)

// ReportServiceImpl aggregates over the payment, expense and salary ledgers.
// Every window slices on createdAt (when money actually moved), not on the
// billing period a payment was credited to.
type ReportServiceImpl struct {
	db          *database.DB
	paymentRepo payment.PaymentRepository
	expenseRepo expense.ExpenseRepository
	salaryRepo  salary.SalaryPaymentRepository
	guard       *access.Guard
}

func NewReportService(
	db *database.DB,
	paymentRepo payment.PaymentRepository,
	expenseRepo expense.ExpenseRepository,
	salaryRepo salary.SalaryPaymentRepository,
	guard *access.Guard,
) report.ReportService {
	return &ReportServiceImpl{
		db:          db,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		salaryRepo:  salaryRepo,
		guard:       guard,
	}
}

func dayWindow(day time.Time) (time.Time, time.Time) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, 1)
}

func monthWindow(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// rangeWindow treats both dates as inclusive.
func rangeWindow(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return from, to
}

func parseDate(date string) (time.Time, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{Field: "date", Message: "must be YYYY-MM-DD"}}
	}
	return day, nil
}

func (s *ReportServiceImpl) DailyPayments(ctx context.Context, caller auth.Caller, branchID, date string) (report.PaymentReport, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return report.PaymentReport{}, err
	}
	day, err := parseDate(date)
	if err != nil {
		return report.PaymentReport{}, err
	}

	from, to := dayWindow(day)
	total, err := s.paymentRepo.SumByBranchAndCreatedBetween(ctx, branchID, from, to)
	if err != nil {
		return report.PaymentReport{}, err
	}

	return report.PaymentReport{BranchID: branchID, Date: &date, TotalPayments: total}, nil
}

func (s *ReportServiceImpl) MonthlyPayments(ctx context.Context, caller auth.Caller, req report.PeriodRequest) (report.PaymentReport, error) {
	if err := req.Validate(); err != nil {
		return report.PaymentReport{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return report.PaymentReport{}, err
	}

	from, to := monthWindow(req.Year, req.Month)
	total, err := s.paymentRepo.SumByBranchAndCreatedBetween(ctx, req.BranchID, from, to)
	if err != nil {
		return report.PaymentReport{}, err
	}

	return report.PaymentReport{BranchID: req.BranchID, Year: &req.Year, Month: &req.Month, TotalPayments: total}, nil
}

func (s *ReportServiceImpl) RangePayments(ctx context.Context, caller auth.Caller, req report.RangeRequest) (report.PaymentReport, error) {
	if err := req.Validate(); err != nil {
		return report.PaymentReport{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return report.PaymentReport{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	from, to := rangeWindow(start, end)

	total, err := s.paymentRepo.SumByBranchAndCreatedBetween(ctx, req.BranchID, from, to)
	if err != nil {
		return report.PaymentReport{}, err
	}

	return report.PaymentReport{
		BranchID:      req.BranchID,
		StartDate:     &req.StartDate,
		EndDate:       &req.EndDate,
		TotalPayments: total,
	}, nil
}

func (s *ReportServiceImpl) DailyExpenses(ctx context.Context, caller auth.Caller, branchID, date string) (report.ExpenseReport, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return report.ExpenseReport{}, err
	}
	day, err := parseDate(date)
	if err != nil {
		return report.ExpenseReport{}, err
	}

	from, to := dayWindow(day)
	regular, salaries, err := s.expenseTotals(ctx, branchID, from, to)
	if err != nil {
		return report.ExpenseReport{}, err
	}

	return report.ExpenseReport{
		BranchID:        branchID,
		Date:            &date,
		RegularExpenses: regular,
		SalaryExpenses:  salaries,
		TotalExpenses:   regular.Add(salaries),
	}, nil
}

func (s *ReportServiceImpl) MonthlyExpenses(ctx context.Context, caller auth.Caller, req report.PeriodRequest) (report.ExpenseReport, error) {
	if err := req.Validate(); err != nil {
		return report.ExpenseReport{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return report.ExpenseReport{}, err
	}

	from, to := monthWindow(req.Year, req.Month)
	regular, salaries, err := s.expenseTotals(ctx, req.BranchID, from, to)
	if err != nil {
		return report.ExpenseReport{}, err
	}

	return report.ExpenseReport{
		BranchID:        req.BranchID,
		Year:            &req.Year,
		Month:           &req.Month,
		RegularExpenses: regular,
		SalaryExpenses:  salaries,
		TotalExpenses:   regular.Add(salaries),
	}, nil
}

func (s *ReportServiceImpl) RangeExpenses(ctx context.Context, caller auth.Caller, req report.RangeRequest) (report.ExpenseReport, error) {
	if err := req.Validate(); err != nil {
		return report.ExpenseReport{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return report.ExpenseReport{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	from, to := rangeWindow(start, end)

	regular, salaries, err := s.expenseTotals(ctx, req.BranchID, from, to)
	if err != nil {
		return report.ExpenseReport{}, err
	}

	return report.ExpenseReport{
		BranchID:        req.BranchID,
		StartDate:       &req.StartDate,
		EndDate:         &req.EndDate,
		RegularExpenses: regular,
		SalaryExpenses:  salaries,
		TotalExpenses:   regular.Add(salaries),
	}, nil
}

func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, caller auth.Caller, req report.PeriodRequest) (report.FinancialSummary, error) {
	if err := req.Validate(); err != nil {
		return report.FinancialSummary{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return report.FinancialSummary{}, err
	}

	from, to := monthWindow(req.Year, req.Month)
	summary, err := s.summarize(ctx, req.BranchID, from, to)
	if err != nil {
		return report.FinancialSummary{}, err
	}

	summary.Year = &req.Year
	summary.Month = &req.Month
	return summary, nil
}

func (s *ReportServiceImpl) RangeSummary(ctx context.Context, caller auth.Caller, req report.RangeRequest) (report.FinancialSummary, error) {
	if err := req.Validate(); err != nil {
		return report.FinancialSummary{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return report.FinancialSummary{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	from, to := rangeWindow(start, end)

	summary, err := s.summarize(ctx, req.BranchID, from, to)
	if err != nil {
		return report.FinancialSummary{}, err
	}

	summary.StartDate = &req.StartDate
	summary.EndDate = &req.EndDate
	return summary, nil
}

func (s *ReportServiceImpl) AllTimeSummary(ctx context.Context, caller auth.Caller, branchID string) (report.FinancialSummary, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return report.FinancialSummary{}, err
	}

	income, err := s.paymentRepo.SumByBranch(ctx, branchID)
	if err != nil {
		return report.FinancialSummary{}, err
	}
	regular, err := s.expenseRepo.SumByBranch(ctx, branchID)
	if err != nil {
		return report.FinancialSummary{}, err
	}
	salaries, err := s.salaryRepo.SumByBranch(ctx, branchID)
	if err != nil {
		return report.FinancialSummary{}, err
	}

	return buildSummary(branchID, income, regular, salaries), nil
}

func (s *ReportServiceImpl) summarize(ctx context.Context, branchID string, from, to time.Time) (report.FinancialSummary, error) {
	income, err := s.paymentRepo.SumByBranchAndCreatedBetween(ctx, branchID, from, to)
	if err != nil {
		return report.FinancialSummary{}, err
	}
	regular, salaries, err := s.expenseTotals(ctx, branchID, from, to)
	if err != nil {
		return report.FinancialSummary{}, err
	}

	return buildSummary(branchID, income, regular, salaries), nil
}

func (s *ReportServiceImpl) expenseTotals(ctx context.Context, branchID string, from, to time.Time) (regular, salaries decimal.Decimal, err error) {
	regular, err = s.expenseRepo.SumByBranchAndCreatedBetween(ctx, branchID, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	salaries, err = s.salaryRepo.SumByBranchAndCreatedBetween(ctx, branchID, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return regular, salaries, nil
}

func buildSummary(branchID string, income, regular, salaries decimal.Decimal) report.FinancialSummary {
	totalExpenses := regular.Add(salaries)
	return report.FinancialSummary{
		BranchID:        branchID,
		TotalIncome:     income,
		RegularExpenses: regular,
		SalaryPayments:  salaries,
		TotalExpenses:   totalExpenses,
		NetProfit:       income.Sub(totalExpenses),
	}
}
