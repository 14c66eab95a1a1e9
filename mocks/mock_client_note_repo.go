package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockClientNoteRepo is a mock implementation of port.ClientNoteRepository.
type MockClientNoteRepo struct {
	mock.Mock
}

var _ port.ClientNoteRepository = (*MockClientNoteRepo)(nil)

func (m *MockClientNoteRepo) Create(ctx context.Context, note *domain.ClientNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockClientNoteRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ClientNote, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientNote), args.Error(1)
}

func (m *MockClientNoteRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ClientNote, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClientNote), args.Int(1), args.Error(2)
}

func (m *MockClientNoteRepo) Update(ctx context.Context, note *domain.ClientNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockClientNoteRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
