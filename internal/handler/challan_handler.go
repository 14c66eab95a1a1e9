package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// ChallanHandler handles challan payment endpoints.
type ChallanHandler struct {
	challanService service.ChallanService
}

// NewChallanHandler creates a new ChallanHandler.
func NewChallanHandler(challanService service.ChallanService) *ChallanHandler {
	return &ChallanHandler{challanService: challanService}
}

// Create handles POST /api/v1/challans
func (h *ChallanHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.ChallanInput
	if !bindJSON(c, &req) {
		return
	}

	challan, err := h.challanService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, challan)
}

// List handles GET /api/v1/challans?kind=<tax type>&status=&client_id=&from=&to=
// Newest payments come first.
func (h *ChallanHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	challans, total, err := h.challanService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, challans, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/challans/:id
func (h *ChallanHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "challan")
	if !ok {
		return
	}

	challan, err := h.challanService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, challan)
}

// Update handles PUT /api/v1/challans/:id
func (h *ChallanHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "challan")
	if !ok {
		return
	}
	var req service.ChallanInput
	if !bindJSON(c, &req) {
		return
	}

	challan, err := h.challanService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, challan)
}

// ChangeStatus handles PUT /api/v1/challans/:id/status
func (h *ChallanHandler) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "challan")
	if !ok {
		return
	}
	var req service.StatusInput
	if !bindJSON(c, &req) {
		return
	}

	challan, err := h.challanService.ChangeStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, challan)
}

// Delete handles DELETE /api/v1/challans/:id
func (h *ChallanHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "challan")
	if !ok {
		return
	}

	if err := h.challanService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "challan deleted"})
}
