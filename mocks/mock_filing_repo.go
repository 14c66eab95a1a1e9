package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockFilingRepo is a mock implementation of port.FilingRepository.
type MockFilingRepo struct {
	mock.Mock
}

var _ port.FilingRepository = (*MockFilingRepo)(nil)

func (m *MockFilingRepo) Create(ctx context.Context, filing *domain.ReturnFiling) error {
	args := m.Called(ctx, filing)
	return args.Error(0)
}

func (m *MockFilingRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ReturnFiling, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnFiling), args.Error(1)
}

func (m *MockFilingRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ReturnFiling, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ReturnFiling), args.Int(1), args.Error(2)
}

func (m *MockFilingRepo) ListUnsettled(ctx context.Context, tenantID uuid.UUID) ([]domain.ReturnFiling, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnFiling), args.Error(1)
}

func (m *MockFilingRepo) Update(ctx context.Context, filing *domain.ReturnFiling) error {
	args := m.Called(ctx, filing)
	return args.Error(0)
}

func (m *MockFilingRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
