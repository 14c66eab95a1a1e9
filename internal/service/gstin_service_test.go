package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func TestGSTINService_Validate_RecordsCheck(t *testing.T) {
	repo := new(mocks.MockGSTINValidationRepo)
	svc := service.NewGSTINService(repo, fixedClock(), nopLogger())
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(v *domain.GSTINValidation) bool {
		return v.GSTIN == "27ABCDE1234F1Z5" && v.TenantID == testTenant && v.LastCheckedBy == testUser
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.GSTINValidation).CheckCount = 2
	}).Return(nil)

	v, err := svc.Validate(context.Background(), staff, " 27abcde1234f1z5 ")

	require.NoError(t, err)
	assert.True(t, v.IsValid)
	assert.Equal(t, "Maharashtra", v.StateName)
	assert.Equal(t, "ABCDE1234F", v.EmbeddedPAN)
	assert.Equal(t, 2, v.CheckCount)
	assert.True(t, fixedNow.Equal(v.LastValidated))
}

func TestGSTINService_Validate_InvalidIsStillRecorded(t *testing.T) {
	repo := new(mocks.MockGSTINValidationRepo)
	svc := service.NewGSTINService(repo, fixedClock(), nopLogger())
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	v, err := svc.Validate(context.Background(), staff, "27ABC")

	require.NoError(t, err)
	assert.False(t, v.IsValid)
	assert.Equal(t, "GSTIN must be 15 characters", v.Message)
}

func TestGSTINService_Validate_RejectsBlankAndOversized(t *testing.T) {
	repo := new(mocks.MockGSTINValidationRepo)
	svc := service.NewGSTINService(repo, fixedClock(), nopLogger())

	for _, in := range []string{"   ", "27ABCDE1234F1Z5EXTRA123"} {
		_, err := svc.Validate(context.Background(), staff, in)
		assert.ErrorIs(t, err, domain.ErrValidation, in)
	}
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestGSTINService_Recent_Limits(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 10},
		{-3, 10},
		{25, 25},
		{500, 100},
	}
	for _, tt := range tests {
		repo := new(mocks.MockGSTINValidationRepo)
		svc := service.NewGSTINService(repo, fixedClock(), nopLogger())
		repo.On("ListRecent", mock.Anything, testTenant, tt.want).Return([]domain.GSTINValidation{}, nil)

		_, err := svc.Recent(context.Background(), staff, tt.in)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	}
}
