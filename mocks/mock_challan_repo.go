package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockChallanRepo is a mock implementation of port.ChallanRepository.
type MockChallanRepo struct {
	mock.Mock
}

var _ port.ChallanRepository = (*MockChallanRepo)(nil)

func (m *MockChallanRepo) Create(ctx context.Context, challan *domain.ChallanPayment) error {
	args := m.Called(ctx, challan)
	return args.Error(0)
}

func (m *MockChallanRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ChallanPayment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChallanPayment), args.Error(1)
}

func (m *MockChallanRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ChallanPayment, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ChallanPayment), args.Int(1), args.Error(2)
}

func (m *MockChallanRepo) Update(ctx context.Context, challan *domain.ChallanPayment) error {
	args := m.Called(ctx, challan)
	return args.Error(0)
}

func (m *MockChallanRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
