package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockTemplateRepo is a mock implementation of port.TemplateRepository.
type MockTemplateRepo struct {
	mock.Mock
}

var _ port.TemplateRepository = (*MockTemplateRepo)(nil)

func (m *MockTemplateRepo) Create(ctx context.Context, tmpl *domain.MessageTemplate) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockTemplateRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.MessageTemplate, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageTemplate), args.Error(1)
}

func (m *MockTemplateRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.MessageTemplate, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.MessageTemplate), args.Int(1), args.Error(2)
}

func (m *MockTemplateRepo) Update(ctx context.Context, tmpl *domain.MessageTemplate) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockTemplateRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
