package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockChallanService is a mock implementation of service.ChallanService.
type MockChallanService struct {
	mock.Mock
}

var _ service.ChallanService = (*MockChallanService)(nil)

func (m *MockChallanService) Create(ctx context.Context, actor domain.Actor, input service.ChallanInput) (*domain.ChallanPayment, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChallanPayment), args.Error(1)
}

func (m *MockChallanService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ChallanPayment, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChallanPayment), args.Error(1)
}

func (m *MockChallanService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ChallanPayment, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ChallanPayment), args.Int(1), args.Error(2)
}

func (m *MockChallanService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.ChallanInput) (*domain.ChallanPayment, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChallanPayment), args.Error(1)
}

func (m *MockChallanService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockChallanService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.StatusInput) (*domain.ChallanPayment, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChallanPayment), args.Error(1)
}
