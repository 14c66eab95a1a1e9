package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockPayrollRepo is a mock implementation of port.PayrollRepository.
type MockPayrollRepo struct {
	mock.Mock
}

var _ port.PayrollRepository = (*MockPayrollRepo)(nil)

func (m *MockPayrollRepo) Create(ctx context.Context, entry *domain.PayrollEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPayrollRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PayrollEntry, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollEntry), args.Error(1)
}

func (m *MockPayrollRepo) List(ctx context.Context, tenantID uuid.UUID, monthYear string, filter domain.ListFilter) ([]domain.PayrollEntry, int, error) {
	args := m.Called(ctx, tenantID, monthYear, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PayrollEntry), args.Int(1), args.Error(2)
}

func (m *MockPayrollRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
