package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// MockGSTINValidationRepo is a mock implementation of port.GSTINValidationRepository.
type MockGSTINValidationRepo struct {
	mock.Mock
}

var _ port.GSTINValidationRepository = (*MockGSTINValidationRepo)(nil)

func (m *MockGSTINValidationRepo) Upsert(ctx context.Context, v *domain.GSTINValidation) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockGSTINValidationRepo) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.GSTINValidation, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTINValidation), args.Error(1)
}
