package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/domain"
	"taxdesk/internal/validator"
)

// ToolsHandler serves stateless helper endpoints.
type ToolsHandler struct {
	now func() time.Time
}

// NewToolsHandler creates a new ToolsHandler. A nil now uses time.Now.
func NewToolsHandler(now func() time.Time) *ToolsHandler {
	if now == nil {
		now = time.Now
	}
	return &ToolsHandler{now: now}
}

// CheckGSTIN handles GET /api/v1/tools/gstin/:gstin
// @Summary Check a GSTIN
// @Description Validates the GSTIN format and returns the state code, state name and embedded PAN.
// @Tags tools
// @Produce json
// @Param gstin path string true "GSTIN"
// @Success 200 {object} APIResponse{data=validator.GSTINCheck}
// @Security BearerAuth
// @Router /tools/gstin/{gstin} [get]
func (h *ToolsHandler) CheckGSTIN(c *gin.Context) {
	gstin := strings.TrimSpace(c.Param("gstin"))
	if gstin == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "gstin is required")
		return
	}
	RespondOK(c, validator.CheckGSTIN(gstin))
}

// FinancialYear handles GET /api/v1/tools/financial-year?date=YYYY-MM-DD
// The date defaults to today.
func (h *ToolsHandler) FinancialYear(c *gin.Context) {
	on := h.now()
	if s := c.Query("date"); s != "" {
		d, err := time.Parse(domain.DateLayout, s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'date': must be YYYY-MM-DD")
			return
		}
		on = d
	}
	RespondOK(c, gin.H{
		"date":            on.Format(domain.DateLayout),
		"financial_year":  domain.FinancialYear(on),
		"assessment_year": domain.AssessmentYear(on),
	})
}
