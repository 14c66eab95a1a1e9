package handler_test

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"taxdesk/internal/domain"
	"taxdesk/internal/export"
	"taxdesk/internal/handler"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func newFeeHandler() (*handler.FeeHandler, *mocks.MockFeeService, *mocks.MockClientService) {
	fees := new(mocks.MockFeeService)
	clients := new(mocks.MockClientService)
	return handler.NewFeeHandler(fees, clients), fees, clients
}

func TestFeeHandler_Create(t *testing.T) {
	h, fees, _ := newFeeHandler()
	actor := staffActor()
	clientID := uuid.New()

	fees.On("Create", mock.Anything, actor, mock.MatchedBy(func(in service.FeeInput) bool {
		return in.ClientID == clientID && in.Amount.Equal(decimal.RequireFromString("1500.50"))
	})).Return(&domain.OutstandingFee{ID: uuid.New(), InvoiceNumber: "ITR-20240601101010"}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/fees", map[string]interface{}{
		"client_id":    clientID.String(),
		"service_type": "ITR",
		"amount":       "1500.50",
	}, &actor)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	fees.AssertExpectations(t)
}

func TestFeeHandler_MarkPaid(t *testing.T) {
	h, fees, _ := newFeeHandler()
	actor := staffActor()
	id := uuid.New()
	fees.On("MarkPaid", mock.Anything, actor, id).Return(&domain.OutstandingFee{ID: id, Status: domain.FeeStatusPaid}, nil)

	c, w := newContext(t, http.MethodPost, "/", nil, &actor)
	withID(c, id)
	h.MarkPaid(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Paid"`)
}

func TestFeeHandler_MarkPaid_AlreadyPaid(t *testing.T) {
	h, fees, _ := newFeeHandler()
	actor := staffActor()
	id := uuid.New()
	fees.On("MarkPaid", mock.Anything, actor, id).
		Return(nil, fmt.Errorf("fee %s: %w", id, domain.ErrInvalidTransition))

	c, w := newContext(t, http.MethodPost, "/", nil, &actor)
	withID(c, id)
	h.MarkPaid(c)

	requireErrorCode(t, w, http.StatusConflict, "INVALID_TRANSITION")
}

func reportFixture() (*service.FeeReport, uuid.UUID) {
	clientID := uuid.New()
	return &service.FeeReport{
		PendingTotal: decimal.NewFromInt(2500),
		PendingCount: 1,
		Fees: []domain.OutstandingFee{{
			ID:            uuid.New(),
			ClientID:      clientID,
			InvoiceNumber: "GST-20240601101010",
			ServiceType:   "GST Return",
			Amount:        decimal.NewFromInt(2500),
			Status:        domain.FeeStatusPending,
		}},
	}, clientID
}

func TestFeeHandler_Report(t *testing.T) {
	h, fees, _ := newFeeHandler()
	actor := staffActor()
	report, _ := reportFixture()
	fees.On("Report", mock.Anything, actor, mock.Anything).Return(report, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/fees/report", nil, &actor)
	h.Report(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending_count":1`)
}

func TestFeeHandler_Export_CSV(t *testing.T) {
	h, fees, clients := newFeeHandler()
	actor := staffActor()
	report, clientID := reportFixture()
	fees.On("Report", mock.Anything, actor, mock.MatchedBy(func(f domain.ListFilter) bool {
		return f.Status == "Pending"
	})).Return(report, nil)
	clients.On("List", mock.Anything, actor, domain.ListFilter{}).
		Return([]domain.Client{{ID: clientID, Name: "Asha Traders"}}, 1, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/fees/export?format=csv&status=Pending", nil, &actor)
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "Outstanding_Fees_")
	assert.Contains(t, disposition, ".csv")

	body := w.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, export.BOM))
	lines := strings.Split(strings.TrimSpace(string(body[len(export.BOM):])), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Invoice Number,Client,"))
	assert.Contains(t, lines[1], "Asha Traders")
	assert.Contains(t, lines[1], "GST-20240601101010")
}

func TestFeeHandler_Export_XLSX(t *testing.T) {
	h, fees, clients := newFeeHandler()
	actor := staffActor()
	report, clientID := reportFixture()
	fees.On("Report", mock.Anything, actor, mock.Anything).Return(report, nil)
	clients.On("List", mock.Anything, actor, domain.ListFilter{}).
		Return([]domain.Client{{ID: clientID, Name: "Asha Traders"}}, 1, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/fees/export?format=xlsx", nil, &actor)
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.XLSXContentType, w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Asha Traders", rows[1][1])
}

func TestFeeHandler_Export_UnknownFormat(t *testing.T) {
	h, fees, clients := newFeeHandler()
	actor := staffActor()
	report, _ := reportFixture()
	fees.On("Report", mock.Anything, actor, mock.Anything).Return(report, nil)
	clients.On("List", mock.Anything, actor, domain.ListFilter{}).Return([]domain.Client{}, 0, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/fees/export?format=pdf", nil, &actor)
	h.Export(c)

	requireErrorCode(t, w, http.StatusBadRequest, "INVALID_REQUEST")
}
