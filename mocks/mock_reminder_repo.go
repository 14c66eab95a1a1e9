package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockReminderRepo is a mock implementation of port.ReminderRepository.
type MockReminderRepo struct {
	mock.Mock
}

var _ port.ReminderRepository = (*MockReminderRepo)(nil)

func (m *MockReminderRepo) Create(ctx context.Context, reminder *domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Reminder, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Reminder, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Reminder), args.Int(1), args.Error(2)
}

func (m *MockReminderRepo) Update(ctx context.Context, reminder *domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
