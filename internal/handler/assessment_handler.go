package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// AssessmentHandler handles assessment order endpoints.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// Create handles POST /api/v1/assessment-orders
func (h *AssessmentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.AssessmentInput
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.assessmentService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, order)
}

// List handles GET /api/v1/assessment-orders?kind=<order type>&status=&client_id=&from=&to=
func (h *AssessmentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	orders, total, err := h.assessmentService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, orders, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/assessment-orders/:id
func (h *AssessmentHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "assessment order")
	if !ok {
		return
	}

	order, err := h.assessmentService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}

// Update handles PUT /api/v1/assessment-orders/:id
func (h *AssessmentHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "assessment order")
	if !ok {
		return
	}
	var req service.AssessmentInput
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.assessmentService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}

// ChangeStatus handles PUT /api/v1/assessment-orders/:id/status
func (h *AssessmentHandler) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "assessment order")
	if !ok {
		return
	}
	var req service.AssessmentStatusInput
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.assessmentService.ChangeStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}

// Delete handles DELETE /api/v1/assessment-orders/:id
func (h *AssessmentHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "assessment order")
	if !ok {
		return
	}

	if err := h.assessmentService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "assessment order deleted"})
}
