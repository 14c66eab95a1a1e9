package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockFilingService is a mock implementation of service.FilingService.
type MockFilingService struct {
	mock.Mock
}

var _ service.FilingService = (*MockFilingService)(nil)

func (m *MockFilingService) Create(ctx context.Context, actor domain.Actor, input service.FilingInput) (*domain.ReturnFiling, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnFiling), args.Error(1)
}

func (m *MockFilingService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ReturnFiling, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnFiling), args.Error(1)
}

func (m *MockFilingService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ReturnFiling, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ReturnFiling), args.Int(1), args.Error(2)
}

func (m *MockFilingService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.FilingInput) (*domain.ReturnFiling, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnFiling), args.Error(1)
}

func (m *MockFilingService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockFilingService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.FilingStatusInput) (*domain.ReturnFiling, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnFiling), args.Error(1)
}

func (m *MockFilingService) Tracker(ctx context.Context, actor domain.Actor) ([]domain.ReturnFiling, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnFiling), args.Error(1)
}
