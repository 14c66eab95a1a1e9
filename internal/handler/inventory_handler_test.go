package handler_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func inventoryXLSX(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestInventoryHandler_Adjust_Insufficient(t *testing.T) {
	svc := new(mocks.MockInventoryService)
	h := handler.NewInventoryHandler(svc)
	actor := staffActor()
	id := uuid.New()
	svc.On("AdjustStock", mock.Anything, actor, id, service.StockAdjustInput{Delta: -5, Note: "issued"}).
		Return(nil, domain.ErrInsufficientStock)

	c, w := newContext(t, http.MethodPost, "/", map[string]interface{}{"delta": -5, "note": "issued"}, &actor)
	withID(c, id)
	h.Adjust(c)

	requireErrorCode(t, w, http.StatusConflict, "INSUFFICIENT_STOCK")
}

func TestInventoryHandler_Import(t *testing.T) {
	svc := new(mocks.MockInventoryService)
	h := handler.NewInventoryHandler(svc)
	actor := staffActor()
	actor.Role = domain.RoleAdmin

	book := inventoryXLSX(t, [][]interface{}{
		{"Item Code", "Name", "Unit", "Unit Price", "Current Stock", "Minimum Stock"},
		{"PEN-01", "Blue Pen", "pcs", "10", "100", "20"},
		{"PEN-01", "Blue Pen copy", "pcs", "10", "5", "1"},
	})
	svc.On("Create", mock.Anything, actor, mock.MatchedBy(func(in service.InventoryInput) bool {
		return in.Name == "Blue Pen" && in.CurrentStock == 100
	})).Return(&domain.InventoryItem{}, nil)
	svc.On("Create", mock.Anything, actor, mock.MatchedBy(func(in service.InventoryInput) bool {
		return in.Name == "Blue Pen copy"
	})).Return(nil, domain.ErrDuplicateItemCode)

	c, w := multipartContext(t, "/api/v1/inventory/import", "items.xlsx", book, nil, actor)
	h.Import(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"created":1`)
	assert.Contains(t, w.Body.String(), `"line":3`)
	svc.AssertExpectations(t)
}

func TestInventoryHandler_Import_RejectsNonXLSX(t *testing.T) {
	svc := new(mocks.MockInventoryService)
	h := handler.NewInventoryHandler(svc)

	c, w := multipartContext(t, "/api/v1/inventory/import", "items.csv", []byte("Name\nPen\n"), nil, staffActor())
	h.Import(c)

	requireErrorCode(t, w, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE")
}

func TestInventoryHandler_Import_MissingNameColumn(t *testing.T) {
	svc := new(mocks.MockInventoryService)
	h := handler.NewInventoryHandler(svc)

	book := inventoryXLSX(t, [][]interface{}{{"Code", "Stock"}, {"X", "1"}})
	c, w := multipartContext(t, "/api/v1/inventory/import", "items.xlsx", book, nil, staffActor())
	h.Import(c)

	requireErrorCode(t, w, http.StatusBadRequest, "INVALID_WORKBOOK")
}
