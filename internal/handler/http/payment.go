package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/educenter/educenter-backend-go/internal/domain/payment"
	"github.com/educenter/educenter-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	AmendAmount(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByStudent(w http.ResponseWriter, r *http.Request)
	StudentInfo(w http.ResponseWriter, r *http.Request)
	UnpaidStudents(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

func (h *PaymentHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.paymentService.Record(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded successfully", created)
}

func (h *PaymentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	p, err := h.paymentService.GetByID(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *PaymentHandlerImpl) AmendAmount(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payment.UpdatePaymentAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	amended, err := h.paymentService.AmendAmount(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment amended successfully", amended)
}

func (h *PaymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.paymentService.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment deleted successfully", nil)
}

// List supports optional category, billing period, createdAt date range,
// student name search and recent-limit filters on top of the required
// branch_id.
func (h *PaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	category := strings.ToUpper(r.URL.Query().Get("category"))
	year, hasYear := queryInt(r, "year")
	month, hasMonth := queryInt(r, "month")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	search := r.URL.Query().Get("search")
	limit, hasLimit := queryInt(r, "limit")

	var payments []payment.PaymentResponse
	switch {
	case search != "":
		payments, err = h.paymentService.SearchByStudentName(r.Context(), caller, branchID, search)
	case startDate != "" && endDate != "":
		payments, err = h.paymentService.ListByBranchAndDateRange(r.Context(), caller, branchID, startDate, endDate)
	case category != "" && hasYear && hasMonth:
		payments, err = h.paymentService.ListByBranchCategoryAndPeriod(r.Context(), caller, branchID, payment.Category(category), year, month)
	case category != "":
		payments, err = h.paymentService.ListByBranchAndCategory(r.Context(), caller, branchID, payment.Category(category))
	case hasYear && hasMonth:
		payments, err = h.paymentService.ListByBranchAndPeriod(r.Context(), caller, branchID, year, month)
	case hasLimit:
		payments, err = h.paymentService.RecentByBranch(r.Context(), caller, branchID, limit)
	default:
		payments, err = h.paymentService.ListByBranch(r.Context(), caller, branchID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

func (h *PaymentHandlerImpl) ListByStudent(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payments, err := h.paymentService.ListByStudent(r.Context(), caller, chi.URLParam(r, "studentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// StudentInfo reports a student's standing in a group. Omitting year or
// month yields all-time totals.
func (h *PaymentHandlerImpl) StudentInfo(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	studentID := chi.URLParam(r, "studentID")
	groupID := chi.URLParam(r, "groupID")
	year := queryIntPtr(r, "year")
	month := queryIntPtr(r, "month")

	info, err := h.paymentService.StudentInfo(r.Context(), caller, studentID, groupID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, info)
}

func (h *PaymentHandlerImpl) UnpaidStudents(w http.ResponseWriter, r *http.Request) {
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

	unpaid, err := h.paymentService.UnpaidStudents(r.Context(), caller, branchID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, unpaid)
}
