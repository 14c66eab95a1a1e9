package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockCMAService is a mock implementation of service.CMAService.
type MockCMAService struct {
	mock.Mock
}

var _ service.CMAService = (*MockCMAService)(nil)

func (m *MockCMAService) Create(ctx context.Context, actor domain.Actor, input service.CMAInput) (*domain.CMAReport, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CMAReport), args.Error(1)
}

func (m *MockCMAService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.CMAReport, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CMAReport), args.Error(1)
}

func (m *MockCMAService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.CMAReport, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CMAReport), args.Int(1), args.Error(2)
}

func (m *MockCMAService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.CMAInput) (*domain.CMAReport, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CMAReport), args.Error(1)
}

func (m *MockCMAService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockCMAService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.StatusInput) (*domain.CMAReport, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CMAReport), args.Error(1)
}
