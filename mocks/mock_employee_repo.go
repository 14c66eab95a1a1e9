package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockEmployeeRepo is a mock implementation of port.EmployeeRepository.
type MockEmployeeRepo struct {
	mock.Mock
}

var _ port.EmployeeRepository = (*MockEmployeeRepo)(nil)

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Employee, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Employee, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.Int(1), args.Error(2)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
