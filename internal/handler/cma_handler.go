package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// CMAHandler handles CMA report endpoints. Utilization figures are
// derived by the service on every response.
type CMAHandler struct {
	cmaService service.CMAService
}

// NewCMAHandler creates a new CMAHandler.
func NewCMAHandler(cmaService service.CMAService) *CMAHandler {
	return &CMAHandler{cmaService: cmaService}
}

// Create handles POST /api/v1/cma-reports
func (h *CMAHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.CMAInput
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.cmaService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, report)
}

// List handles GET /api/v1/cma-reports?kind=<reporting period>&status=&client_id=
func (h *CMAHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	reports, total, err := h.cmaService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, reports, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/cma-reports/:id
func (h *CMAHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "cma report")
	if !ok {
		return
	}

	report, err := h.cmaService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Update handles PUT /api/v1/cma-reports/:id
func (h *CMAHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "cma report")
	if !ok {
		return
	}
	var req service.CMAInput
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.cmaService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// ChangeStatus handles PUT /api/v1/cma-reports/:id/status
func (h *CMAHandler) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "cma report")
	if !ok {
		return
	}
	var req service.StatusInput
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.cmaService.ChangeStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Delete handles DELETE /api/v1/cma-reports/:id
func (h *CMAHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "cma report")
	if !ok {
		return
	}

	if err := h.cmaService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "cma report deleted"})
}
