package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/mocks"
)

func TestChallanHandler_Create_Duplicate(t *testing.T) {
	svc := new(mocks.MockChallanService)
	h := handler.NewChallanHandler(svc)
	actor := staffActor()
	svc.On("Create", mock.Anything, actor, mock.Anything).Return(nil, domain.ErrDuplicateChallan)

	c, w := newContext(t, http.MethodPost, "/api/v1/challans", map[string]interface{}{
		"client_id":      uuid.New(),
		"challan_number": "00042",
		"challan_type":   "ITNS 281",
		"tax_type":       "TDS",
		"amount":         "15000",
		"payment_date":   "2025-06-07",
	}, &actor)
	h.Create(c)

	requireErrorCode(t, w, http.StatusConflict, "DUPLICATE_CHALLAN")
}

func TestChallanHandler_List_FiltersByTaxType(t *testing.T) {
	svc := new(mocks.MockChallanService)
	h := handler.NewChallanHandler(svc)
	actor := staffActor()
	svc.On("List", mock.Anything, actor, mock.MatchedBy(func(f domain.ListFilter) bool {
		return f.Kind == "TDS" && f.To != nil && f.To.Format(domain.DateLayout) == "2025-06-30"
	})).Return([]domain.ChallanPayment{{ID: uuid.New(), ChallanNumber: "00042"}}, 1, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/challans?kind=TDS&to=2025-06-30", nil, &actor)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "00042")
	svc.AssertExpectations(t)
}

func TestChallanHandler_ChangeStatus_AfterClearing(t *testing.T) {
	svc := new(mocks.MockChallanService)
	h := handler.NewChallanHandler(svc)
	actor := staffActor()
	id := uuid.New()
	svc.On("ChangeStatus", mock.Anything, actor, id, mock.Anything).Return(nil, domain.ErrInvalidTransition)

	c, w := newContext(t, http.MethodPut, "/", map[string]string{"status": "Bounced"}, &actor)
	withID(c, id)
	h.ChangeStatus(c)

	requireErrorCode(t, w, http.StatusConflict, "INVALID_TRANSITION")
}
