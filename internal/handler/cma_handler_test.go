package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/mocks"
)

func TestCMAHandler_GetByID(t *testing.T) {
	svc := new(mocks.MockCMAService)
	h := handler.NewCMAHandler(svc)
	actor := staffActor()
	id := uuid.New()
	svc.On("GetByID", mock.Anything, actor, id).Return(&domain.CMAReport{
		ID: id, UtilizationPercent: decimal.NewFromInt(75),
	}, nil)

	c, w := newContext(t, http.MethodGet, "/", nil, &actor)
	withID(c, id)
	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"utilization_percent":"75"`)
}

func TestCMAHandler_Delete_NotFound(t *testing.T) {
	svc := new(mocks.MockCMAService)
	h := handler.NewCMAHandler(svc)
	actor := staffActor()
	id := uuid.New()
	svc.On("Delete", mock.Anything, actor, id).Return(domain.ErrNotFound)

	c, w := newContext(t, http.MethodDelete, "/", nil, &actor)
	withID(c, id)
	h.Delete(c)

	requireErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
}
