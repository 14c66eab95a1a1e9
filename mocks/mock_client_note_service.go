package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockClientNoteService is a mock implementation of service.ClientNoteService.
type MockClientNoteService struct {
	mock.Mock
}

var _ service.ClientNoteService = (*MockClientNoteService)(nil)

func (m *MockClientNoteService) Create(ctx context.Context, actor domain.Actor, input service.ClientNoteInput) (*domain.ClientNote, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientNote), args.Error(1)
}

func (m *MockClientNoteService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ClientNote, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientNote), args.Error(1)
}

func (m *MockClientNoteService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ClientNote, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClientNote), args.Int(1), args.Error(2)
}

func (m *MockClientNoteService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.ClientNoteInput) (*domain.ClientNote, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientNote), args.Error(1)
}

func (m *MockClientNoteService) SetPinned(ctx context.Context, actor domain.Actor, id uuid.UUID, pinned bool) (*domain.ClientNote, error) {
	args := m.Called(ctx, actor, id, pinned)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientNote), args.Error(1)
}

func (m *MockClientNoteService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
