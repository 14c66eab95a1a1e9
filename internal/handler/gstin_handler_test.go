package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/mocks"
)

func TestGSTINHandler_Validate(t *testing.T) {
	svc := new(mocks.MockGSTINService)
	h := handler.NewGSTINHandler(svc)
	actor := staffActor()
	svc.On("Validate", mock.Anything, actor, "27abcde1234f1z5").
		Return(&domain.GSTINValidation{GSTIN: "27ABCDE1234F1Z5", IsValid: true, CheckCount: 3}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/gstin-validations",
		map[string]string{"gstin": "27abcde1234f1z5"}, &actor)
	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"check_count":3`)
}

func TestGSTINHandler_Validate_Blank(t *testing.T) {
	svc := new(mocks.MockGSTINService)
	h := handler.NewGSTINHandler(svc)
	actor := staffActor()
	svc.On("Validate", mock.Anything, actor, "").Return(nil, domain.NewValidationError("gstin", "is required"))

	c, w := newContext(t, http.MethodPost, "/", map[string]string{}, &actor)
	h.Validate(c)

	requireErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestGSTINHandler_Recent_Limit(t *testing.T) {
	tests := []struct {
		query string
		limit int
	}{
		{"", 0},
		{"?limit=25", 25},
		{"?limit=lots", 0},
	}
	for _, tt := range tests {
		svc := new(mocks.MockGSTINService)
		h := handler.NewGSTINHandler(svc)
		actor := staffActor()
		svc.On("Recent", mock.Anything, actor, tt.limit).Return([]domain.GSTINValidation{}, nil)

		c, w := newContext(t, http.MethodGet, "/api/v1/gstin-validations"+tt.query, nil, &actor)
		h.Recent(c)

		assert.Equal(t, http.StatusOK, w.Code, tt.query)
		svc.AssertExpectations(t)
	}
}
