package handler

import (
	"github.com/gin-gonic/gin"

	"taxdesk/internal/service"
)

// ClientNoteHandler handles client note endpoints.
type ClientNoteHandler struct {
	noteService service.ClientNoteService
}

// NewClientNoteHandler creates a new ClientNoteHandler.
func NewClientNoteHandler(noteService service.ClientNoteService) *ClientNoteHandler {
	return &ClientNoteHandler{noteService: noteService}
}

type pinRequest struct {
	Pinned bool `json:"pinned"`
}

// Create handles POST /api/v1/client-notes
func (h *ClientNoteHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.ClientNoteInput
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), actor, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, note)
}

// List handles GET /api/v1/client-notes?client_id=&kind=<category>&search=
func (h *ClientNoteHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	notes, total, err := h.noteService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, notes, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/client-notes/:id
func (h *ClientNoteHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "note")
	if !ok {
		return
	}

	note, err := h.noteService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, note)
}

// Update handles PUT /api/v1/client-notes/:id
func (h *ClientNoteHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "note")
	if !ok {
		return
	}
	var req service.ClientNoteInput
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, note)
}

// Pin handles PUT /api/v1/client-notes/:id/pin with body {"pinned": bool}
func (h *ClientNoteHandler) Pin(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "note")
	if !ok {
		return
	}
	var req pinRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.noteService.SetPinned(c.Request.Context(), actor, id, req.Pinned)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, note)
}

// Delete handles DELETE /api/v1/client-notes/:id
// Authors may delete their own notes; admins may delete any.
func (h *ClientNoteHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "note")
	if !ok {
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "note deleted"})
}
