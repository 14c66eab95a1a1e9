package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockCommunicationLogRepo is a mock implementation of port.CommunicationLogRepository.
type MockCommunicationLogRepo struct {
	mock.Mock
}

var _ port.CommunicationLogRepository = (*MockCommunicationLogRepo)(nil)

func (m *MockCommunicationLogRepo) Create(ctx context.Context, log *domain.CommunicationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockCommunicationLogRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.CommunicationLog, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunicationLog), args.Error(1)
}

func (m *MockCommunicationLogRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.CommunicationLog, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CommunicationLog), args.Int(1), args.Error(2)
}

func (m *MockCommunicationLogRepo) UpdateStatus(ctx context.Context, log *domain.CommunicationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
