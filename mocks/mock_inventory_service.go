package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockInventoryService is a mock implementation of service.InventoryService.
type MockInventoryService struct {
	mock.Mock
}

var _ service.InventoryService = (*MockInventoryService)(nil)

func (m *MockInventoryService) Create(ctx context.Context, actor domain.Actor, input service.InventoryInput) (*domain.InventoryItem, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.InventoryItem, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.InventoryItem, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.InventoryItem), args.Int(1), args.Error(2)
}

func (m *MockInventoryService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.InventoryInput) (*domain.InventoryItem, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockInventoryService) AdjustStock(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.StockAdjustInput) (*domain.InventoryItem, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Summary(ctx context.Context, actor domain.Actor) (*service.InventorySummary, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InventorySummary), args.Error(1)
}
