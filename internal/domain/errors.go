package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrValidation            = errors.New("validation failed")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed          = errors.New("file upload to storage failed")
	ErrDuplicatePAN          = errors.New("a client with this PAN already exists")
	ErrDuplicateGSTIN        = errors.New("a client with this GSTIN already exists")
	ErrDuplicateEmployeeCode = errors.New("employee code already exists")
	ErrDuplicateItemCode     = errors.New("item code already exists")
	ErrDuplicateInvoice      = errors.New("invoice number already exists")
	ErrDuplicatePayroll      = errors.New("payroll entry already exists for this employee and month")
	ErrClientHasOpenFees     = errors.New("client has pending outstanding fees")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrInsufficientStock     = errors.New("insufficient stock for this adjustment")
	ErrNegativeNetSalary     = errors.New("net salary cannot be negative")
	ErrTemplateInactive      = errors.New("message template is inactive")
	ErrNoRecipient           = errors.New("client has no email address")
	ErrDuplicateChallan      = errors.New("challan number already exists")
	ErrRecordLocked          = errors.New("record can no longer be edited")
)

// ValidationError collects per-field messages. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError holding a single field message.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add records a message for field. The first message recorded for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Merge copies the fields of other into e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for f, m := range other.Fields {
		e.Add(f, m)
	}
}

// OrNil returns nil when no field has been recorded.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
