package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// CommunicationHandler handles message template, send and log endpoints.
type CommunicationHandler struct {
	commService service.CommunicationService
}

// NewCommunicationHandler creates a new CommunicationHandler.
func NewCommunicationHandler(commService service.CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{commService: commService}
}

// CreateTemplate handles POST /api/v1/templates
func (h *CommunicationHandler) CreateTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.TemplateInput
	if !bindJSON(c, &req) {
		return
	}

	tmpl, err := h.commService.CreateTemplate(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, tmpl)
}

// ListTemplates handles GET /api/v1/templates
func (h *CommunicationHandler) ListTemplates(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	templates, total, err := h.commService.ListTemplates(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, templates, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetTemplate handles GET /api/v1/templates/:id
func (h *CommunicationHandler) GetTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "template")
	if !ok {
		return
	}

	tmpl, err := h.commService.GetTemplate(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tmpl)
}

// UpdateTemplate handles PUT /api/v1/templates/:id
func (h *CommunicationHandler) UpdateTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "template")
	if !ok {
		return
	}
	var req service.TemplateInput
	if !bindJSON(c, &req) {
		return
	}

	tmpl, err := h.commService.UpdateTemplate(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tmpl)
}

// DeleteTemplate handles DELETE /api/v1/templates/:id
func (h *CommunicationHandler) DeleteTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "template")
	if !ok {
		return
	}

	if err := h.commService.DeleteTemplate(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "template deleted"})
}

// Send handles POST /api/v1/communications/send
// A failed delivery still answers 201; the log carries status Failed and the error.
func (h *CommunicationHandler) Send(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.SendInput
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.commService.Send(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, entry)
}

// Retry handles POST /api/v1/communications/:id/retry
func (h *CommunicationHandler) Retry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "communication")
	if !ok {
		return
	}

	entry, err := h.commService.Retry(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entry)
}

// ListLogs handles GET /api/v1/communications?client_id=
func (h *CommunicationHandler) ListLogs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	logs, total, err := h.commService.ListLogs(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, logs, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}
