package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockFeeService is a mock implementation of service.FeeService.
type MockFeeService struct {
	mock.Mock
}

var _ service.FeeService = (*MockFeeService)(nil)

func (m *MockFeeService) Create(ctx context.Context, actor domain.Actor, input service.FeeInput) (*domain.OutstandingFee, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingFee), args.Error(1)
}

func (m *MockFeeService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingFee), args.Error(1)
}

func (m *MockFeeService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.OutstandingFee, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.OutstandingFee), args.Int(1), args.Error(2)
}

func (m *MockFeeService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.FeeInput) (*domain.OutstandingFee, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingFee), args.Error(1)
}

func (m *MockFeeService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockFeeService) MarkPaid(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingFee), args.Error(1)
}

func (m *MockFeeService) Reopen(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingFee), args.Error(1)
}

func (m *MockFeeService) Report(ctx context.Context, actor domain.Actor, filter domain.ListFilter) (*service.FeeReport, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FeeReport), args.Error(1)
}
