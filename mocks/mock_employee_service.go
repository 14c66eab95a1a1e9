package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockEmployeeService is a mock implementation of service.EmployeeService.
type MockEmployeeService struct {
	mock.Mock
}

var _ service.EmployeeService = (*MockEmployeeService)(nil)

func (m *MockEmployeeService) Create(ctx context.Context, actor domain.Actor, input service.EmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Employee, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Employee, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.Int(1), args.Error(2)
}

func (m *MockEmployeeService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.EmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockEmployeeService) CreatePayroll(ctx context.Context, actor domain.Actor, input service.PayrollInput) (*domain.PayrollEntry, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollEntry), args.Error(1)
}

func (m *MockEmployeeService) ListPayroll(ctx context.Context, actor domain.Actor, monthYear string, filter domain.ListFilter) ([]domain.PayrollEntry, int, error) {
	args := m.Called(ctx, actor, monthYear, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PayrollEntry), args.Int(1), args.Error(2)
}

func (m *MockEmployeeService) DeletePayroll(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockEmployeeService) PayrollSummary(ctx context.Context, actor domain.Actor, monthYear string) (*service.PayrollSummary, error) {
	args := m.Called(ctx, actor, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PayrollSummary), args.Error(1)
}
