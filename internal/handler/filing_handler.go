package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/domain"
	"taxdesk/internal/export"
	"taxdesk/internal/service"
)

// FilingHandler handles return filing endpoints for every filing kind.
type FilingHandler struct {
	filingService service.FilingService
	clientService service.ClientService
}

// NewFilingHandler creates a new FilingHandler.
func NewFilingHandler(filingService service.FilingService, clientService service.ClientService) *FilingHandler {
	return &FilingHandler{filingService: filingService, clientService: clientService}
}

// Create handles POST /api/v1/filings
func (h *FilingHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.FilingInput
	if !bindJSON(c, &req) {
		return
	}

	filing, err := h.filingService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, filing)
}

// List handles GET /api/v1/filings?kind=&status=&client_id=
func (h *FilingHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	filings, total, err := h.filingService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, filings, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// Tracker handles GET /api/v1/filings/tracker
func (h *FilingHandler) Tracker(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	filings, err := h.filingService.Tracker(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, filings)
}

// Export handles GET /api/v1/filings/export?format=csv|xlsx
// The list filters apply; paging does not.
func (h *FilingHandler) Export(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}
	filter.Offset, filter.Limit = 0, 0

	ctx := c.Request.Context()
	filings, _, err := h.filingService.List(ctx, actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	names, err := clientNames(ctx, h.clientService, actor)
	if err != nil {
		HandleError(c, err)
		return
	}

	name := "Filings"
	if filter.Kind != "" {
		name = "Filings " + filter.Kind
	}
	sendTable(c, name, c.Query("format"), export.FilingTable(filings, names))
}

// GetByID handles GET /api/v1/filings/:id
func (h *FilingHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "filing")
	if !ok {
		return
	}

	filing, err := h.filingService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, filing)
}

// Update handles PUT /api/v1/filings/:id
func (h *FilingHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "filing")
	if !ok {
		return
	}
	var req service.FilingInput
	if !bindJSON(c, &req) {
		return
	}

	filing, err := h.filingService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, filing)
}

// ChangeStatus handles PUT /api/v1/filings/:id/status
func (h *FilingHandler) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "filing")
	if !ok {
		return
	}
	var req service.FilingStatusInput
	if !bindJSON(c, &req) {
		return
	}

	filing, err := h.filingService.ChangeStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, filing)
}

// Delete handles DELETE /api/v1/filings/:id
func (h *FilingHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "filing")
	if !ok {
		return
	}

	if err := h.filingService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "filing deleted"})
}

// FormTypes handles GET /api/v1/filings/form-types
func (h *FilingHandler) FormTypes(c *gin.Context) {
	RespondOK(c, domain.FormTypes)
}
