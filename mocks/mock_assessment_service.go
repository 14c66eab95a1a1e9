package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockAssessmentService is a mock implementation of service.AssessmentService.
type MockAssessmentService struct {
	mock.Mock
}

var _ service.AssessmentService = (*MockAssessmentService)(nil)

func (m *MockAssessmentService) Create(ctx context.Context, actor domain.Actor, input service.AssessmentInput) (*domain.AssessmentOrder, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssessmentOrder), args.Error(1)
}

func (m *MockAssessmentService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.AssessmentOrder, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssessmentOrder), args.Error(1)
}

func (m *MockAssessmentService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.AssessmentOrder, int, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AssessmentOrder), args.Int(1), args.Error(2)
}

func (m *MockAssessmentService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.AssessmentInput) (*domain.AssessmentOrder, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssessmentOrder), args.Error(1)
}

func (m *MockAssessmentService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockAssessmentService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input service.AssessmentStatusInput) (*domain.AssessmentOrder, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssessmentOrder), args.Error(1)
}
