package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// ChecklistHandler handles document checklist endpoints.
type ChecklistHandler struct {
	checklistService service.ChecklistService
}

// NewChecklistHandler creates a new ChecklistHandler.
func NewChecklistHandler(checklistService service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// Create handles POST /api/v1/checklists
func (h *ChecklistHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.ChecklistInput
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.checklistService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, cl)
}

// List handles GET /api/v1/checklists
func (h *ChecklistHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	lists, total, err := h.checklistService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, lists, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/checklists/:id
func (h *ChecklistHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "checklist")
	if !ok {
		return
	}

	cl, err := h.checklistService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cl)
}

// MarkItem handles PUT /api/v1/checklists/:id/items/:itemId
func (h *ChecklistHandler) MarkItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "checklist")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId", "checklist item")
	if !ok {
		return
	}
	var req struct {
		Received *bool `json:"received" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "received is required")
		return
	}

	cl, err := h.checklistService.MarkItem(c.Request.Context(), actor, id, itemID, *req.Received)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cl)
}

// Complete handles POST /api/v1/checklists/:id/complete
func (h *ChecklistHandler) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "checklist")
	if !ok {
		return
	}

	cl, err := h.checklistService.Complete(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cl)
}

// Reopen handles POST /api/v1/checklists/:id/reopen
func (h *ChecklistHandler) Reopen(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "checklist")
	if !ok {
		return
	}

	cl, err := h.checklistService.Reopen(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cl)
}

// Delete handles DELETE /api/v1/checklists/:id
func (h *ChecklistHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "checklist")
	if !ok {
		return
	}

	if err := h.checklistService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "checklist deleted"})
}
