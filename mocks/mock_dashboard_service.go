package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

var _ service.DashboardService = (*MockDashboardService)(nil)

func (m *MockDashboardService) Dashboard(ctx context.Context, actor domain.Actor) (*service.Dashboard, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *MockDashboardService) Analytics(ctx context.Context, actor domain.Actor, months int) (*service.Analytics, error) {
	args := m.Called(ctx, actor, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Analytics), args.Error(1)
}
