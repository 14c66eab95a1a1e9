package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockAssessmentRepo is a mock implementation of port.AssessmentRepository.
type MockAssessmentRepo struct {
	mock.Mock
}

var _ port.AssessmentRepository = (*MockAssessmentRepo)(nil)

func (m *MockAssessmentRepo) Create(ctx context.Context, order *domain.AssessmentOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockAssessmentRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.AssessmentOrder, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssessmentOrder), args.Error(1)
}

func (m *MockAssessmentRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.AssessmentOrder, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AssessmentOrder), args.Int(1), args.Error(2)
}

func (m *MockAssessmentRepo) Update(ctx context.Context, order *domain.AssessmentOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockAssessmentRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
