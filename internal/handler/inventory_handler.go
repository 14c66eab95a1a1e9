package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/export"
	"taxdesk/internal/service"
)

// InventoryHandler handles office inventory endpoints.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles POST /api/v1/inventory
func (h *InventoryHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.InventoryInput
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, item)
}

// List handles GET /api/v1/inventory?status=Low%20Stock&kind=<category>
func (h *InventoryHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	items, total, err := h.inventoryService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, items, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// Summary handles GET /api/v1/inventory/summary
func (h *InventoryHandler) Summary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	summary, err := h.inventoryService.Summary(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Import handles POST /api/v1/inventory/import (multipart, field "file", .xlsx).
func (h *InventoryHandler) Import(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "inventory import expects an .xlsx workbook")
		return
	}
	rows, err := export.ReadInventory(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_WORKBOOK", err.Error())
		return
	}

	res, err := service.ImportInventory(c.Request.Context(), h.inventoryService, actor, rows)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// GetByID handles GET /api/v1/inventory/:id
func (h *InventoryHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "inventory item")
	if !ok {
		return
	}

	item, err := h.inventoryService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Update handles PUT /api/v1/inventory/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "inventory item")
	if !ok {
		return
	}
	var req service.InventoryInput
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Adjust handles POST /api/v1/inventory/:id/adjust
func (h *InventoryHandler) Adjust(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "inventory item")
	if !ok {
		return
	}
	var req service.StockAdjustInput
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.AdjustStock(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Delete handles DELETE /api/v1/inventory/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "inventory item")
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "inventory item deleted"})
}
