package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

const defaultUpcomingDays = 7

// ReminderHandler handles reminder endpoints.
type ReminderHandler struct {
	reminderService service.ReminderService
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// Create handles POST /api/v1/reminders
func (h *ReminderHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.ReminderInput
	if !bindJSON(c, &req) {
		return
	}

	reminder, err := h.reminderService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, reminder)
}

// List handles GET /api/v1/reminders
func (h *ReminderHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	reminders, total, err := h.reminderService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, reminders, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// Upcoming handles GET /api/v1/reminders/upcoming?days=7
func (h *ReminderHandler) Upcoming(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultUpcomingDays)))
	if err != nil || days < 0 {
		days = defaultUpcomingDays
	}

	reminders, err := h.reminderService.Upcoming(c.Request.Context(), actor, days)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reminders)
}

// FollowUps handles GET /api/v1/reminders/follow-ups
func (h *ReminderHandler) FollowUps(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	reminders, err := h.reminderService.FollowUps(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reminders)
}

// GetByID handles GET /api/v1/reminders/:id
func (h *ReminderHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "reminder")
	if !ok {
		return
	}

	reminder, err := h.reminderService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reminder)
}

// Update handles PUT /api/v1/reminders/:id
func (h *ReminderHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "reminder")
	if !ok {
		return
	}
	var req service.ReminderInput
	if !bindJSON(c, &req) {
		return
	}

	reminder, err := h.reminderService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reminder)
}

// Complete handles POST /api/v1/reminders/:id/complete
func (h *ReminderHandler) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "reminder")
	if !ok {
		return
	}

	reminder, err := h.reminderService.Complete(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reminder)
}

// Cancel handles POST /api/v1/reminders/:id/cancel
func (h *ReminderHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "reminder")
	if !ok {
		return
	}

	reminder, err := h.reminderService.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reminder)
}

// Delete handles DELETE /api/v1/reminders/:id
func (h *ReminderHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "reminder")
	if !ok {
		return
	}

	if err := h.reminderService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "reminder deleted"})
}
