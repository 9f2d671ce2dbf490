package http

import (
	"encoding/json"
	"net/http"

	"github.com/educenter/educenter-backend-go/internal/domain/salary"
	"github.com/educenter/educenter-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	CalculateBranch(w http.ResponseWriter, r *http.Request)
	Disburse(w http.ResponseWriter, r *http.Request)
	Subtract(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	ListByTeacher(w http.ResponseWriter, r *http.Request)
	ListByBranch(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

func (h *SalaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	teacherID := chi.URLParam(r, "teacherID")
	year, hasYear := queryInt(r, "year")
	month, hasMonth := queryInt(r, "month")
	if !hasYear || !hasMonth {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	calc, err := h.salaryService.Calculate(r.Context(), caller, teacherID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calc)
}

func (h *SalaryHandlerImpl) CalculateBranch(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	branchID := r.URL.Query().Get("branch_id")
	year, hasYear := queryInt(r, "year")
	month, hasMonth := queryInt(r, "month")
	if branchID == "" || !hasYear || !hasMonth {
		response.BadRequest(w, "branch_id, year and month query parameters are required", nil)
		return
	}

	calcs, err := h.salaryService.CalculateForBranch(r.Context(), caller, branchID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calcs)
}

func (h *SalaryHandlerImpl) Disburse(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req salary.CreateSalaryPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.salaryService.Disburse(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary payment recorded successfully", created)
}

func (h *SalaryHandlerImpl) Subtract(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req salary.CreateSalaryPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.salaryService.Subtract(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary deduction recorded successfully", created)
}

func (h *SalaryHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.salaryService.DeletePayment(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary payment deleted successfully", nil)
}

func (h *SalaryHandlerImpl) ListByTeacher(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	teacherID := chi.URLParam(r, "teacherID")
	year, hasYear := queryInt(r, "year")
	month, hasMonth := queryInt(r, "month")

	var payments []salary.SalaryPaymentResponse
	if hasYear && hasMonth {
		payments, err = h.salaryService.ListByTeacherAndPeriod(r.Context(), caller, teacherID, year, month)
	} else {
		payments, err = h.salaryService.ListByTeacher(r.Context(), caller, teacherID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

func (h *SalaryHandlerImpl) ListByBranch(w http.ResponseWriter, r *http.Request) {
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

	payments, err := h.salaryService.ListByBranch(r.Context(), caller, branchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

func (h *SalaryHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.salaryService.History(r.Context(), caller, chi.URLParam(r, "teacherID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
