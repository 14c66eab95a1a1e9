package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockAuditRepo is a mock implementation of port.AuditRepository.
type MockAuditRepo struct {
	mock.Mock
}

var _ port.AuditRepository = (*MockAuditRepo)(nil)

func (m *MockAuditRepo) Create(ctx context.Context, audit *domain.BalanceSheetAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockAuditRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.BalanceSheetAudit, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetAudit), args.Error(1)
}

func (m *MockAuditRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.BalanceSheetAudit, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.BalanceSheetAudit), args.Int(1), args.Error(2)
}

func (m *MockAuditRepo) Update(ctx context.Context, audit *domain.BalanceSheetAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockAuditRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
