package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/logger"
	"taxdesk/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response. Fields is set for validation
// failures and maps each offending field to its message.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", "one or more fields are invalid"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE",
			"unsupported file type; allowed: pdf, doc, docx, xls, xlsx, jpg, jpeg, png, gif, xbrl, xml"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrDuplicatePAN):
		return http.StatusConflict, "DUPLICATE_PAN", "a client with this PAN already exists"
	case errors.Is(err, domain.ErrDuplicateGSTIN):
		return http.StatusConflict, "DUPLICATE_GSTIN", "a client with this GSTIN already exists"
	case errors.Is(err, domain.ErrDuplicateEmployeeCode):
		return http.StatusConflict, "DUPLICATE_EMPLOYEE_CODE", "employee code already exists"
	case errors.Is(err, domain.ErrDuplicateItemCode):
		return http.StatusConflict, "DUPLICATE_ITEM_CODE", "item code already exists"
	case errors.Is(err, domain.ErrDuplicateInvoice):
		return http.StatusConflict, "DUPLICATE_INVOICE", "invoice number already exists"
	case errors.Is(err, domain.ErrDuplicatePayroll):
		return http.StatusConflict, "DUPLICATE_PAYROLL", "payroll entry already exists for this employee and month"
	case errors.Is(err, domain.ErrDuplicateChallan):
		return http.StatusConflict, "DUPLICATE_CHALLAN", "challan number already exists"
	case errors.Is(err, domain.ErrClientHasOpenFees):
		return http.StatusConflict, "CLIENT_HAS_OPEN_FEES", "client has pending outstanding fees"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_TRANSITION", "status transition not allowed"
	case errors.Is(err, domain.ErrRecordLocked):
		return http.StatusConflict, "RECORD_LOCKED", "record can no longer be edited"
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, "INSUFFICIENT_STOCK", "insufficient stock for this adjustment"
	case errors.Is(err, domain.ErrNegativeNetSalary):
		return http.StatusBadRequest, "NEGATIVE_NET_SALARY", "net salary cannot be negative"
	case errors.Is(err, domain.ErrTemplateInactive):
		return http.StatusUnprocessableEntity, "TEMPLATE_INACTIVE", "message template is inactive"
	case errors.Is(err, domain.ErrNoRecipient):
		return http.StatusUnprocessableEntity, "NO_RECIPIENT", "client has no email address"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context(), nil).Error("internal error",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	apiErr := &APIError{Code: code, Message: msg}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		apiErr.Fields = verr.Fields
	}
	_ = c.Error(err)
	c.JSON(status, APIResponse{Success: false, Error: apiErr})
}

// requireActor returns the authenticated caller. Returns false if the auth
// context is missing (error response already written).
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, err := middleware.GetActor(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return domain.Actor{}, false
	}
	return actor, true
}

// parseID reads a UUID path parameter. Returns false if it is malformed
// (error response already written).
func parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body into dst. Returns false on malformed
// JSON (error response already written).
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON")
		return false
	}
	return true
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// parseListFilter reads search, status, kind, client_id, from and to plus
// pagination from the query string.
func parseListFilter(c *gin.Context) (domain.ListFilter, error) {
	filter := domain.ListFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Kind:   c.Query("kind"),
	}
	filter.Offset, filter.Limit = parsePagination(c)

	if cidStr := c.Query("client_id"); cidStr != "" {
		cid, err := uuid.Parse(cidStr)
		if err != nil {
			return filter, fmt.Errorf("invalid 'client_id': must be a valid UUID")
		}
		filter.ClientID = &cid
	}
	from, err := domain.ParseDate(c.Query("from"))
	if err != nil {
		return filter, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
	}
	filter.From = from
	to, err := domain.ParseDate(c.Query("to"))
	if err != nil {
		return filter, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
	}
	filter.To = to
	return filter, nil
}

// listFilterOrAbort wraps parseListFilter, writing a 400 on failure.
func listFilterOrAbort(c *gin.Context) (domain.ListFilter, bool) {
	filter, err := parseListFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return filter, false
	}
	return filter, true
}
