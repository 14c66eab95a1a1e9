package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxdesk/internal/service"
)

// DocumentHandler handles document upload and retrieval endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload handles POST /api/v1/documents (multipart/form-data).
// Form fields: file (required), client_id, title, document_type, folder, notes.
func (h *DocumentHandler) Upload(c *gin.Context) {
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

	input := service.DocumentUploadInput{
		Title:        c.PostForm("title"),
		DocumentType: c.PostForm("document_type"),
		Folder:       c.PostForm("folder"),
		Notes:        c.PostForm("notes"),
		FileName:     header.Filename,
		Size:         header.Size,
		Body:         file,
	}
	if cidStr := c.PostForm("client_id"); cidStr != "" {
		cid, parseErr := uuid.Parse(cidStr)
		if parseErr != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid client ID")
			return
		}
		input.ClientID = &cid
	}

	doc, err := h.documentService.Upload(c.Request.Context(), actor, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, doc)
}

// List handles GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	filter, ok := listFilterOrAbort(c)
	if !ok {
		return
	}

	docs, total, err := h.documentService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, docs, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "document")
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Download handles GET /api/v1/documents/:id/download and returns a presigned URL.
func (h *DocumentHandler) Download(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "document")
	if !ok {
		return
	}

	url, err := h.documentService.GetDownloadURL(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "document")
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "document deleted"})
}
