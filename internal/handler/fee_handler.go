package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/export"
	"taxdesk/internal/service"
)

// FeeHandler handles outstanding fee endpoints and the outstanding report.
type FeeHandler struct {
	feeService    service.FeeService
	clientService service.ClientService
}

// NewFeeHandler creates a new FeeHandler.
func NewFeeHandler(feeService service.FeeService, clientService service.ClientService) *FeeHandler {
	return &FeeHandler{feeService: feeService, clientService: clientService}
}

// Create handles POST /api/v1/fees
func (h *FeeHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.FeeInput
	if !bindJSON(c, &req) {
		return
	}

	fee, err := h.feeService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, fee)
}

// List handles GET /api/v1/fees
func (h *FeeHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	fees, total, err := h.feeService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, fees, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/fees/:id
func (h *FeeHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "fee")
	if !ok {
		return
	}

	fee, err := h.feeService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, fee)
}

// Update handles PUT /api/v1/fees/:id
func (h *FeeHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "fee")
	if !ok {
		return
	}
	var req service.FeeInput
	if !bindJSON(c, &req) {
		return
	}

	fee, err := h.feeService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, fee)
}

// MarkPaid handles POST /api/v1/fees/:id/pay
func (h *FeeHandler) MarkPaid(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "fee")
	if !ok {
		return
	}

	fee, err := h.feeService.MarkPaid(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, fee)
}

// Reopen handles POST /api/v1/fees/:id/reopen
func (h *FeeHandler) Reopen(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "fee")
	if !ok {
		return
	}

	fee, err := h.feeService.Reopen(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, fee)
}

// Delete handles DELETE /api/v1/fees/:id
func (h *FeeHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "fee")
	if !ok {
		return
	}

	if err := h.feeService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "fee deleted"})
}

// Report handles GET /api/v1/fees/report
func (h *FeeHandler) Report(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	report, err := h.feeService.Report(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Export handles GET /api/v1/fees/export?format=csv|xlsx
func (h *FeeHandler) Export(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	report, err := h.feeService.Report(ctx, actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	names, err := clientNames(ctx, h.clientService, actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendTable(c, "Outstanding Fees", c.Query("format"), export.FeeTable(report.Fees, names))
}
