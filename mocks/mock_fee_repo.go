package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockFeeRepo is a mock implementation of port.FeeRepository.
type MockFeeRepo struct {
	mock.Mock
}

var _ port.FeeRepository = (*MockFeeRepo)(nil)

func (m *MockFeeRepo) Create(ctx context.Context, fee *domain.OutstandingFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockFeeRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.OutstandingFee, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingFee), args.Error(1)
}

func (m *MockFeeRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.OutstandingFee, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.OutstandingFee), args.Int(1), args.Error(2)
}

func (m *MockFeeRepo) Update(ctx context.Context, fee *domain.OutstandingFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockFeeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockFeeRepo) CountPendingByClient(ctx context.Context, tenantID, clientID uuid.UUID) (int, error) {
	args := m.Called(ctx, tenantID, clientID)
	return args.Int(0), args.Error(1)
}
