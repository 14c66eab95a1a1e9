package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// ClientHandler handles client management endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create handles POST /api/v1/clients
func (h *ClientHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.ClientInput
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, client)
}

// List handles GET /api/v1/clients
func (h *ClientHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	clients, total, err := h.clientService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, clients, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// Search handles GET /api/v1/clients/search?q=
func (h *ClientHandler) Search(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	clients, err := h.clientService.Search(c.Request.Context(), actor, c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, clients)
}

// GetByID handles GET /api/v1/clients/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, client)
}

// Update handles PUT /api/v1/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}
	var req service.ClientInput
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, client)
}

// SetStatus handles PUT /api/v1/clients/:id/status
func (h *ClientHandler) SetStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	client, err := h.clientService.SetStatus(c.Request.Context(), actor, id, domain.ClientStatus(req.Status))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, client)
}

// Delete handles DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "client deleted"})
}
