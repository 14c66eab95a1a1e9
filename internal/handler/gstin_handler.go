package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// GSTINHandler records GSTIN checks and lists recent ones. The stateless
// check lives on ToolsHandler.
type GSTINHandler struct {
	gstinService service.GSTINService
}

// NewGSTINHandler creates a new GSTINHandler.
func NewGSTINHandler(gstinService service.GSTINService) *GSTINHandler {
	return &GSTINHandler{gstinService: gstinService}
}

type gstinRequest struct {
	GSTIN string `json:"gstin"`
}

// Validate handles POST /api/v1/gstin-validations
func (h *GSTINHandler) Validate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req gstinRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.gstinService.Validate(c.Request.Context(), actor, req.GSTIN)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, v)
}

// Recent handles GET /api/v1/gstin-validations?limit=10
func (h *GSTINHandler) Recent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		limit = 0
	}

	recent, err := h.gstinService.Recent(c.Request.Context(), actor, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, recent)
}
