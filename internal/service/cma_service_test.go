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

func newCMAService() (service.CMAService, *mocks.MockCMAReportRepo, *mocks.MockClientRepo, *mocks.Transactor) {
	repo := new(mocks.MockCMAReportRepo)
	clients := new(mocks.MockClientRepo)
	tx := &mocks.Transactor{}
	return service.NewCMAService(repo, clients, tx, newValidator(), nopLogger()), repo, clients, tx
}

func TestCMAService_Create_DerivesUtilization(t *testing.T) {
	svc, repo, clients, tx := newCMAService()
	clientID := uuid.New()
	clients.On("GetByID", mock.Anything, testTenant, clientID).Return(&domain.Client{ID: clientID}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CMAReport")).Return(nil)

	report, err := svc.Create(context.Background(), staff, service.CMAInput{
		ClientID:            clientID,
		ReportingPeriod:     "Quarterly",
		ReportDate:          "2025-06-30",
		BankName:            "State Bank of India",
		WorkingCapitalLimit: decimal.NewFromInt(5000000),
		UtilizedAmount:      decimal.NewFromInt(3750000),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CMAStatusDraft, report.Status)
	assert.True(t, decimal.NewFromInt(75).Equal(report.UtilizationPercent))
	assert.False(t, report.OverLimit)
	assert.Equal(t, 1, tx.Calls)
}

func TestCMAService_Create_NegativeAmount(t *testing.T) {
	svc, _, _, _ := newCMAService()

	_, err := svc.Create(context.Background(), staff, service.CMAInput{
		ClientID:        uuid.New(),
		ReportingPeriod: "Annual",
		ReportDate:      "2025-03-31",
		InventoryValue:  decimal.NewFromInt(-1),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at least 0", verr.Fields["inventory_value"])
}

func TestCMAService_Update_OnlyDraft(t *testing.T) {
	svc, repo, _, _ := newCMAService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).
		Return(&domain.CMAReport{ID: id, Status: domain.CMAStatusFinal}, nil)

	_, err := svc.Update(context.Background(), staff, id, service.CMAInput{
		ReportingPeriod: "Annual", ReportDate: "2025-03-31",
	})

	assert.ErrorIs(t, err, domain.ErrRecordLocked)
}

func TestCMAService_ChangeStatus(t *testing.T) {
	tests := []struct {
		name string
		from domain.CMAStatus
		to   string
		err  error
	}{
		{"finalize", domain.CMAStatusDraft, "Final", nil},
		{"back to draft", domain.CMAStatusFinal, "Draft", nil},
		{"submit", domain.CMAStatusFinal, "Submitted", nil},
		{"skip final", domain.CMAStatusDraft, "Submitted", domain.ErrInvalidTransition},
		{"after submission", domain.CMAStatusSubmitted, "Draft", domain.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newCMAService()
			id := uuid.New()
			repo.On("GetByID", mock.Anything, testTenant, id).Return(&domain.CMAReport{ID: id, Status: tt.from}, nil)
			repo.On("Update", mock.Anything, mock.Anything).Return(nil)

			report, err := svc.ChangeStatus(context.Background(), staff, id, service.StatusInput{Status: tt.to})

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.CMAStatus(tt.to), report.Status)
		})
	}
}
