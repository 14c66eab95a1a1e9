package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockCommunicationService is a mock implementation of service.CommunicationService.
type MockCommunicationService struct {
	mock.Mock
}

var _ service.CommunicationService = (*MockCommunicationService)(nil)

func (m *MockCommunicationService) CreateTemplate(ctx context.Context, actor domain.Actor, input service.TemplateInput) (*domain.MessageTemplate, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageTemplate), args.Error(1)
}

func (m *MockCommunicationService) GetTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.MessageTemplate, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageTemplate), args.Error(1)
}

func (m *MockCommunicationService) ListTemplates(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.MessageTemplate, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.MessageTemplate), args.Int(1), args.Error(2)
}

func (m *MockCommunicationService) UpdateTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.TemplateInput) (*domain.MessageTemplate, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageTemplate), args.Error(1)
}

func (m *MockCommunicationService) DeleteTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockCommunicationService) Send(ctx context.Context, actor domain.Actor, input service.SendInput) (*domain.CommunicationLog, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunicationLog), args.Error(1)
}

func (m *MockCommunicationService) Retry(ctx context.Context, actor domain.Actor, logID uuid.UUID) (*domain.CommunicationLog, error) {
	args := m.Called(ctx, actor, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunicationLog), args.Error(1)
}

func (m *MockCommunicationService) ListLogs(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.CommunicationLog, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CommunicationLog), args.Int(1), args.Error(2)
}
