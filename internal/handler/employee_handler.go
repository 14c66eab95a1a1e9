package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// EmployeeHandler handles employee and payroll endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.EmployeeInput
	if !bindJSON(c, &req) {
		return
	}

	emp, err := h.employeeService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, emp)
}

// List handles GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	employees, total, err := h.employeeService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, employees, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/employees/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "employee")
	if !ok {
		return
	}

	emp, err := h.employeeService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, emp)
}

// Update handles PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "employee")
	if !ok {
		return
	}
	var req service.EmployeeInput
	if !bindJSON(c, &req) {
		return
	}

	emp, err := h.employeeService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, emp)
}

// Delete handles DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "employee")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "employee deleted"})
}

// CreatePayroll handles POST /api/v1/payroll
func (h *EmployeeHandler) CreatePayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.PayrollInput
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.employeeService.CreatePayroll(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, entry)
}

// ListPayroll handles GET /api/v1/payroll?month=YYYY-MM
func (h *EmployeeHandler) ListPayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	entries, total, err := h.employeeService.ListPayroll(c.Request.Context(), actor, c.Query("month"), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, entries, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// PayrollSummary handles GET /api/v1/payroll/summary?month=YYYY-MM
func (h *EmployeeHandler) PayrollSummary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	summary, err := h.employeeService.PayrollSummary(c.Request.Context(), actor, c.Query("month"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// DeletePayroll handles DELETE /api/v1/payroll/:id
func (h *EmployeeHandler) DeletePayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "payroll entry")
	if !ok {
		return
	}

	if err := h.employeeService.DeletePayroll(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "payroll entry deleted"})
}
