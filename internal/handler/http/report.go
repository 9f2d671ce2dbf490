package http

import (
	"net/http"

	"github.com/educenter/educenter-backend-go/internal/domain/report"
	"github.com/educenter/educenter-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Payments(w http.ResponseWriter, r *http.Request)
	Expenses(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Payments dispatches on the query parameters: date for a single day,
// year+month for a calendar month, start_date+end_date for a range.
func (h *ReportHandlerImpl) Payments(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	branchID := r.URL.Query().Get("branch_id")
	if branchID == "" {
		response.BadRequest(w, "branch_id query parameter is required", nil)
		return
	}

	var result report.PaymentReport
	year, hasYear := queryInt(r, "year")
	month, hasMonth := queryInt(r, "month")

	switch {
	case r.URL.Query().Get("date") != "":
		result, err = h.reportService.DailyPayments(r.Context(), caller, branchID, r.URL.Query().Get("date"))
	case hasYear && hasMonth:
		result, err = h.reportService.MonthlyPayments(r.Context(), caller, report.PeriodRequest{
			BranchID: branchID, Year: year, Month: month,
		})
	case r.URL.Query().Get("start_date") != "" && r.URL.Query().Get("end_date") != "":
		result, err = h.reportService.RangePayments(r.Context(), caller, report.RangeRequest{
			BranchID:  branchID,
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		})
	default:
		response.BadRequest(w, "date, year+month or start_date+end_date query parameters are required", nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ReportHandlerImpl) Expenses(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	branchID := r.URL.Query().Get("branch_id")
	if branchID == "" {
		response.BadRequest(w, "branch_id query parameter is required", nil)
		return
	}

	var result report.ExpenseReport
	year, hasYear := queryInt(r, "year")
	month, hasMonth := queryInt(r, "month")

	switch {
	case r.URL.Query().Get("date") != "":
		result, err = h.reportService.DailyExpenses(r.Context(), caller, branchID, r.URL.Query().Get("date"))
	case hasYear && hasMonth:
		result, err = h.reportService.MonthlyExpenses(r.Context(), caller, report.PeriodRequest{
			BranchID: branchID, Year: year, Month: month,
		})
	case r.URL.Query().Get("start_date") != "" && r.URL.Query().Get("end_date") != "":
		result, err = h.reportService.RangeExpenses(r.Context(), caller, report.RangeRequest{
			BranchID:  branchID,
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		})
	default:
		response.BadRequest(w, "date, year+month or start_date+end_date query parameters are required", nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary falls back to all-time totals when no window is given.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	branchID := r.URL.Query().Get("branch_id")
	if branchID == "" {
		response.BadRequest(w, "branch_id query parameter is required", nil)
		return
	}

	var result report.FinancialSummary
	year, hasYear := queryInt(r, "year")
	month, hasMonth := queryInt(r, "month")

	switch {
	case hasYear && hasMonth:
		result, err = h.reportService.MonthlySummary(r.Context(), caller, report.PeriodRequest{
			BranchID: branchID, Year: year, Month: month,
		})
	case r.URL.Query().Get("start_date") != "" && r.URL.Query().Get("end_date") != "":
		result, err = h.reportService.RangeSummary(r.Context(), caller, report.RangeRequest{
			BranchID:  branchID,
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		})
	default:
		result, err = h.reportService.AllTimeSummary(r.Context(), caller, branchID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
