package http

import (
	"net/http"

	"github.com/educenter/educenter-backend-go/internal/domain/dashboard"
	"github.com/educenter/educenter-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.dashboardService.Stats(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
