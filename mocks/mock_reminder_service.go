package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockReminderService is a mock implementation of service.ReminderService.
type MockReminderService struct {
	mock.Mock
}

var _ service.ReminderService = (*MockReminderService)(nil)

func (m *MockReminderService) Create(ctx context.Context, actor domain.Actor, input service.ReminderInput) (*domain.Reminder, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Reminder, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Reminder), args.Int(1), args.Error(2)
}

func (m *MockReminderService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.ReminderInput) (*domain.Reminder, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockReminderService) Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderService) Cancel(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderService) Upcoming(ctx context.Context, actor domain.Actor, days int) ([]domain.Reminder, error) {
	args := m.Called(ctx, actor, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderService) FollowUps(ctx context.Context, actor domain.Actor) ([]domain.Reminder, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderService) OverdueCount(ctx context.Context, actor domain.Actor) (int, error) {
	args := m.Called(ctx, actor)
	return args.Int(0), args.Error(1)
}
