package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockInventoryRepo is a mock implementation of port.InventoryRepository.
type MockInventoryRepo struct {
	mock.Mock
}

var _ port.InventoryRepository = (*MockInventoryRepo)(nil)

func (m *MockInventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.InventoryItem, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepo) GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*domain.InventoryItem, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.InventoryItem, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.InventoryItem), args.Int(1), args.Error(2)
}

func (m *MockInventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
