package handler_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/export"
	"taxdesk/internal/handler"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func newFilingHandler() (*handler.FilingHandler, *mocks.MockFilingService, *mocks.MockClientService) {
	filings := new(mocks.MockFilingService)
	clients := new(mocks.MockClientService)
	return handler.NewFilingHandler(filings, clients), filings, clients
}

func TestFilingHandler_ChangeStatus(t *testing.T) {
	h, filings, _ := newFilingHandler()
	actor := staffActor()
	id := uuid.New()
	in := service.FilingStatusInput{Status: "Filed", AcknowledgmentNumber: "ACK123"}
	filings.On("ChangeStatus", mock.Anything, actor, id, in).
		Return(&domain.ReturnFiling{ID: id, Status: domain.FilingStatus("Filed")}, nil)

	c, w := newContext(t, http.MethodPut, "/", map[string]string{"status": "Filed", "acknowledgment_number": "ACK123"}, &actor)
	withID(c, id)
	h.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	filings.AssertExpectations(t)
}

func TestFilingHandler_ChangeStatus_NotAllowed(t *testing.T) {
	h, filings, _ := newFilingHandler()
	actor := staffActor()
	id := uuid.New()
	filings.On("ChangeStatus", mock.Anything, actor, id, mock.Anything).Return(nil, domain.ErrInvalidTransition)

	c, w := newContext(t, http.MethodPut, "/", map[string]string{"status": "Approved"}, &actor)
	withID(c, id)
	h.ChangeStatus(c)

	requireErrorCode(t, w, http.StatusConflict, "INVALID_TRANSITION")
}

func TestFilingHandler_List_ByKind(t *testing.T) {
	h, filings, _ := newFilingHandler()
	actor := staffActor()
	clientID := uuid.New()
	filings.On("List", mock.Anything, actor, mock.MatchedBy(func(f domain.ListFilter) bool {
		return f.Kind == "gst" && f.ClientID != nil && *f.ClientID == clientID
	})).Return([]domain.ReturnFiling{}, 0, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/filings?kind=gst&client_id="+clientID.String(), nil, &actor)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	filings.AssertExpectations(t)
}

func TestFilingHandler_List_BadClientID(t *testing.T) {
	h, _, _ := newFilingHandler()
	actor := staffActor()

	c, w := newContext(t, http.MethodGet, "/api/v1/filings?client_id=42", nil, &actor)
	h.List(c)

	requireErrorCode(t, w, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestFilingHandler_Tracker(t *testing.T) {
	h, filings, _ := newFilingHandler()
	actor := staffActor()
	filings.On("Tracker", mock.Anything, actor).
		Return([]domain.ReturnFiling{{ID: uuid.New(), Overdue: true}}, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/filings/tracker", nil, &actor)
	h.Tracker(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"overdue":true`)
}

func TestFilingHandler_Export_IgnoresPaging(t *testing.T) {
	h, filings, clients := newFilingHandler()
	actor := staffActor()
	clientID := uuid.New()
	filings.On("List", mock.Anything, actor, mock.MatchedBy(func(f domain.ListFilter) bool {
		return f.Kind == "tds" && f.Limit == 0 && f.Offset == 0
	})).Return([]domain.ReturnFiling{{ClientID: clientID, Kind: domain.FilingKindTDS, FormType: "26Q"}}, 1, nil)
	clients.On("List", mock.Anything, actor, domain.ListFilter{}).
		Return([]domain.Client{{ID: clientID, Name: "Asha Traders"}}, 1, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/filings/export?kind=tds&limit=5&offset=10", nil, &actor)
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Filings_tds_")
	body := w.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, export.BOM))
	assert.Contains(t, string(body), "Asha Traders,tds,26Q")
	filings.AssertExpectations(t)
}
