package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// AuditHandler handles balance sheet audit endpoints.
type AuditHandler struct {
	auditService service.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// Create handles POST /api/v1/audits
func (h *AuditHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.AuditInput
	if !bindJSON(c, &req) {
		return
	}

	audit, err := h.auditService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, audit)
}

// List handles GET /api/v1/audits?kind=<audit type>&status=&client_id=&from=&to=
// from and to bound the balance sheet date.
func (h *AuditHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	audits, total, err := h.auditService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, audits, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/audits/:id
func (h *AuditHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "audit")
	if !ok {
		return
	}

	audit, err := h.auditService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, audit)
}

// Update handles PUT /api/v1/audits/:id
func (h *AuditHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "audit")
	if !ok {
		return
	}
	var req service.AuditInput
	if !bindJSON(c, &req) {
		return
	}

	audit, err := h.auditService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, audit)
}

// ChangeStatus handles PUT /api/v1/audits/:id/status
func (h *AuditHandler) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "audit")
	if !ok {
		return
	}
	var req service.AuditStatusInput
	if !bindJSON(c, &req) {
		return
	}

	audit, err := h.auditService.ChangeStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, audit)
}

// Delete handles DELETE /api/v1/audits/:id
func (h *AuditHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "audit")
	if !ok {
		return
	}

	if err := h.auditService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "audit deleted"})
}
