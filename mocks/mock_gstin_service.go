package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockGSTINService is a mock implementation of service.GSTINService.
type MockGSTINService struct {
	mock.Mock
}

var _ service.GSTINService = (*MockGSTINService)(nil)

func (m *MockGSTINService) Validate(ctx context.Context, actor domain.Actor, gstin string) (*domain.GSTINValidation, error) {
	args := m.Called(ctx, actor, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTINValidation), args.Error(1)
}

func (m *MockGSTINService) Recent(ctx context.Context, actor domain.Actor, limit int) ([]domain.GSTINValidation, error) {
	args := m.Called(ctx, actor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTINValidation), args.Error(1)
}
