package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockCMAReportRepo is a mock implementation of port.CMAReportRepository.
type MockCMAReportRepo struct {
	mock.Mock
}

var _ port.CMAReportRepository = (*MockCMAReportRepo)(nil)

func (m *MockCMAReportRepo) Create(ctx context.Context, report *domain.CMAReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockCMAReportRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.CMAReport, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CMAReport), args.Error(1)
}

func (m *MockCMAReportRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.CMAReport, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CMAReport), args.Int(1), args.Error(2)
}

func (m *MockCMAReportRepo) Update(ctx context.Context, report *domain.CMAReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockCMAReportRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
