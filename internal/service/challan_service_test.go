package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func newChallanService() (service.ChallanService, *mocks.MockChallanRepo, *mocks.MockClientRepo) {
	repo := new(mocks.MockChallanRepo)
	clients := new(mocks.MockClientRepo)
	svc := service.NewChallanService(repo, clients, &mocks.Transactor{}, newValidator(), fixedClock(), nopLogger())
	return svc, repo, clients
}

func tdsChallan(clientID uuid.UUID) service.ChallanInput {
	return service.ChallanInput{
		ClientID:      clientID,
		ChallanNumber: "00042",
		ChallanType:   "ITNS 281",
		TaxType:       "TDS",
		Amount:        decimal.NewFromInt(15000),
		PaymentDate:   "2025-06-07",
		BSRCode:       "0510002",
		SerialNumber:  "00042",
	}
}

func TestChallanService_Create(t *testing.T) {
	svc, repo, clients := newChallanService()
	clientID := uuid.New()
	clients.On("GetByID", mock.Anything, testTenant, clientID).Return(&domain.Client{ID: clientID}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ChallanPayment")).Return(nil)

	challan, err := svc.Create(context.Background(), staff, tdsChallan(clientID))

	require.NoError(t, err)
	assert.Equal(t, domain.ChallanStatusPending, challan.Status)
	assert.Equal(t, domain.ChallanITNS281, challan.ChallanType)
	assert.Nil(t, challan.ClearedAt)
}

func TestChallanService_Create_CrossFieldRules(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*service.ChallanInput)
		field string
	}{
		{"gst head on tds form", func(in *service.ChallanInput) { in.TaxType = "GST" }, "tax_type"},
		{"income tax without year", func(in *service.ChallanInput) {
			in.ChallanType, in.TaxType = "ITNS 280", "Income Tax"
		}, "assessment_year"},
		{"short bsr code", func(in *service.ChallanInput) { in.BSRCode = "05100" }, "bsr_code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newChallanService()
			input := tdsChallan(uuid.New())
			tt.edit(&input)

			_, err := svc.Create(context.Background(), staff, input)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestChallanService_Create_Duplicate(t *testing.T) {
	svc, repo, clients := newChallanService()
	clientID := uuid.New()
	clients.On("GetByID", mock.Anything, testTenant, clientID).Return(&domain.Client{ID: clientID}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateChallan)

	_, err := svc.Create(context.Background(), staff, tdsChallan(clientID))

	assert.ErrorIs(t, err, domain.ErrDuplicateChallan)
}

func TestChallanService_Clear_StampsClearedAt(t *testing.T) {
	svc, repo, _ := newChallanService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).
		Return(&domain.ChallanPayment{ID: id, Status: domain.ChallanStatusPending}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	challan, err := svc.ChangeStatus(context.Background(), staff, id, service.StatusInput{Status: "Cleared"})

	require.NoError(t, err)
	require.NotNil(t, challan.ClearedAt)
	assert.True(t, fixedNow.Equal(*challan.ClearedAt))
}

func TestChallanService_Represent_BouncedGoesBackToPending(t *testing.T) {
	svc, repo, _ := newChallanService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).
		Return(&domain.ChallanPayment{ID: id, Status: domain.ChallanStatusBounced}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	challan, err := svc.ChangeStatus(context.Background(), staff, id, service.StatusInput{Status: "Pending"})

	require.NoError(t, err)
	assert.Equal(t, domain.ChallanStatusPending, challan.Status)
}

func TestChallanService_Cleared_IsFinal(t *testing.T) {
	svc, repo, _ := newChallanService()
	id := uuid.New()
	cleared := fixedNow
	repo.On("GetByID", mock.Anything, testTenant, id).
		Return(&domain.ChallanPayment{ID: id, Status: domain.ChallanStatusCleared, ClearedAt: &cleared}, nil)

	_, err := svc.ChangeStatus(context.Background(), staff, id, service.StatusInput{Status: "Failed"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.Update(context.Background(), staff, id, tdsChallan(uuid.Nil))
	assert.ErrorIs(t, err, domain.ErrRecordLocked)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
