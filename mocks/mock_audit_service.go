package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockAuditService is a mock implementation of service.AuditService.
type MockAuditService struct {
	mock.Mock
}

var _ service.AuditService = (*MockAuditService)(nil)

func (m *MockAuditService) Create(ctx context.Context, actor domain.Actor, input service.AuditInput) (*domain.BalanceSheetAudit, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetAudit), args.Error(1)
}

func (m *MockAuditService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.BalanceSheetAudit, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetAudit), args.Error(1)
}

func (m *MockAuditService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.BalanceSheetAudit, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.BalanceSheetAudit), args.Int(1), args.Error(2)
}

func (m *MockAuditService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.AuditInput) (*domain.BalanceSheetAudit, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetAudit), args.Error(1)
}

func (m *MockAuditService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockAuditService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.AuditStatusInput) (*domain.BalanceSheetAudit, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetAudit), args.Error(1)
}
