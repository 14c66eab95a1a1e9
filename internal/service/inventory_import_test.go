package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/export"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func TestImportInventory_RecordsFailuresAndContinues(t *testing.T) {
	svc := new(mocks.MockInventoryService)
	actor := domain.Actor{TenantID: uuid.New(), UserID: uuid.New(), Role: domain.RoleStaff}

	rows := []export.InventoryRow{
		{Line: 2, ItemCode: "A4", Name: "A4 Paper", Unit: "box", UnitPrice: decimal.NewFromInt(250), CurrentStock: 10},
		{Line: 3, ItemCode: "A4", Name: "A4 Paper again"},
		{Line: 4, Name: "Stapler", CurrentStock: 2, MinimumStock: 1},
	}

	svc.On("Create", mock.Anything, actor, mock.MatchedBy(func(in service.InventoryInput) bool {
		return in.Name == "A4 Paper" && in.Unit == "box" && in.UnitPrice.Equal(decimal.NewFromInt(250))
	})).Return(&domain.InventoryItem{}, nil).Once()
	svc.On("Create", mock.Anything, actor, mock.MatchedBy(func(in service.InventoryInput) bool {
		return in.Name == "A4 Paper again"
	})).Return(nil, domain.ErrDuplicateItemCode).Once()
	svc.On("Create", mock.Anything, actor, mock.MatchedBy(func(in service.InventoryInput) bool {
		return in.Name == "Stapler" && in.MinimumStock == 1
	})).Return(&domain.InventoryItem{}, nil).Once()

	res, err := service.ImportInventory(context.Background(), svc, actor, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, 3, res.Failed[0].Line)
	assert.Equal(t, "A4", res.Failed[0].ItemCode)
	assert.Contains(t, res.Failed[0].Error, "item code already exists")
	svc.AssertExpectations(t)
}

func TestImportInventory_StopsOnCancelledContext(t *testing.T) {
	svc := new(mocks.MockInventoryService)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := service.ImportInventory(ctx, svc, domain.Actor{}, []export.InventoryRow{{Line: 2, Name: "Pen"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Created)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
