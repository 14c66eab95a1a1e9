package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// DashboardHandler handles dashboard and analytics endpoints.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard handles GET /api/v1/dashboard
// @Summary Practice dashboard
// @Description Client count, pending ITR/TDS/GST filings, total outstanding, overdue counts, recent clients and upcoming reminders.
// @Tags dashboard
// @Produce json
// @Success 200 {object} APIResponse{data=service.Dashboard}
// @Failure 401 {object} APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	d, err := h.dashboardService.Dashboard(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, d)
}

// Analytics handles GET /api/v1/analytics?months=6
// @Summary Practice analytics
// @Description Monthly paid-fee revenue over a trailing window, clients by type and filings by kind and status.
// @Tags dashboard
// @Produce json
// @Param months query int false "Trailing months; 0 uses the configured default"
// @Success 200 {object} APIResponse{data=service.Analytics}
// @Failure 401 {object} APIResponse
// @Security BearerAuth
// @Router /analytics [get]
func (h *DashboardHandler) Analytics(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	months, err := strconv.Atoi(c.DefaultQuery("months", "0"))
	if err != nil || months < 0 || months > 60 {
		months = 0
	}

	a, err := h.dashboardService.Analytics(c.Request.Context(), actor, months)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, a)
}
