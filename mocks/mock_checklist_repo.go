package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockChecklistRepo is a mock implementation of port.ChecklistRepository.
type MockChecklistRepo struct {
	mock.Mock
}

var _ port.ChecklistRepository = (*MockChecklistRepo)(nil)

func (m *MockChecklistRepo) Create(ctx context.Context, checklist *domain.DocumentChecklist) error {
	args := m.Called(ctx, checklist)
	return args.Error(0)
}

func (m *MockChecklistRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DocumentChecklist, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentChecklist), args.Error(1)
}

func (m *MockChecklistRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.DocumentChecklist, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentChecklist), args.Int(1), args.Error(2)
}

func (m *MockChecklistRepo) UpdateStatus(ctx context.Context, checklist *domain.DocumentChecklist) error {
	args := m.Called(ctx, checklist)
	return args.Error(0)
}

func (m *MockChecklistRepo) SetItemReceived(ctx context.Context, checklistID, itemID uuid.UUID, received bool) error {
	args := m.Called(ctx, checklistID, itemID, received)
	return args.Error(0)
}

func (m *MockChecklistRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
