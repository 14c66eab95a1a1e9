package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockChecklistService is a mock implementation of service.ChecklistService.
type MockChecklistService struct {
	mock.Mock
}

var _ service.ChecklistService = (*MockChecklistService)(nil)

func (m *MockChecklistService) Create(ctx context.Context, actor domain.Actor, input service.ChecklistInput) (*domain.DocumentChecklist, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentChecklist), args.Error(1)
}

func (m *MockChecklistService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentChecklist), args.Error(1)
}

func (m *MockChecklistService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.DocumentChecklist, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentChecklist), args.Int(1), args.Error(2)
}

func (m *MockChecklistService) MarkItem(ctx context.Context, actor domain.Actor, id, itemID uuid.UUID, received bool) (*domain.DocumentChecklist, error) {
	args := m.Called(ctx, actor, id, itemID, received)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentChecklist), args.Error(1)
}

func (m *MockChecklistService) Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentChecklist), args.Error(1)
}

func (m *MockChecklistService) Reopen(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentChecklist), args.Error(1)
}

func (m *MockChecklistService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
