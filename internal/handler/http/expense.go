package http

import (
	"encoding/json"
	"net/http"

	"github.com/educenter/educenter-backend-go/internal/domain/expense"
	"github.com/educenter/educenter-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

func (h *ExpenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.expenseService.Create(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense recorded successfully", created)
}

func (h *ExpenseHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	e, err := h.expenseService.GetByID(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, e)
}

func (h *ExpenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.expenseService.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense deleted successfully", nil)
}

func (h *ExpenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	var expenses []expense.ExpenseResponse
	if startDate != "" && endDate != "" {
		expenses, err = h.expenseService.ListByBranchAndDateRange(r.Context(), caller, branchID, startDate, endDate)
	} else {
		expenses, err = h.expenseService.ListByBranch(r.Context(), caller, branchID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}
