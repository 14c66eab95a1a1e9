package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func newClientService() (service.ClientService, *mocks.MockClientRepo, *mocks.MockFeeRepo) {
	repo := new(mocks.MockClientRepo)
	fees := new(mocks.MockFeeRepo)
	svc := service.NewClientService(repo, fees, &mocks.Transactor{}, newValidator(), nopLogger())
	return svc, repo, fees
}

func TestClientService_Create_Success(t *testing.T) {
	svc, repo, _ := newClientService()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	client, err := svc.Create(context.Background(), staff, service.ClientInput{
		Name:       "  Mehta & Sons ",
		PAN:        "ABCDE1234F",
		GSTIN:      "27ABCDE1234F1Z5",
		Phone:      "9876543210",
		ClientType: "Partnership",
	})

	require.NoError(t, err)
	assert.Equal(t, "Mehta & Sons", client.Name)
	assert.Equal(t, testTenant, client.TenantID)
	assert.Equal(t, domain.ClientStatusActive, client.Status)
	require.NotNil(t, client.PAN)
	assert.Equal(t, "ABCDE1234F", *client.PAN)
	assert.Equal(t, "27", client.StateCode)
	assert.Equal(t, "Maharashtra", client.StateName)
	assert.Equal(t, testUser, client.CreatedBy)
	repo.AssertExpectations(t)
}

func TestClientService_Create_BlankIdentifiersStoredAsNull(t *testing.T) {
	svc, repo, _ := newClientService()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	client, err := svc.Create(context.Background(), staff, service.ClientInput{
		Name:       "Asha Rao",
		PAN:        "   ",
		ClientType: "Individual",
	})

	require.NoError(t, err)
	assert.Nil(t, client.PAN)
	assert.Nil(t, client.GSTIN)
	assert.Empty(t, client.StateCode)
}

func TestClientService_Create_InvalidIdentifiers(t *testing.T) {
	svc, repo, _ := newClientService()

	_, err := svc.Create(context.Background(), staff, service.ClientInput{
		Name:       "Bad Ids",
		PAN:        "abcde1234f",
		GSTIN:      "27ABCDE1234F15Z",
		Phone:      "12345",
		ClientType: "Individual",
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "pan")
	assert.Contains(t, verr.Fields, "gstin")
	assert.Contains(t, verr.Fields, "phone")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientService_Create_DuplicatePAN(t *testing.T) {
	svc, repo, _ := newClientService()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(domain.ErrDuplicatePAN)

	client, err := svc.Create(context.Background(), staff, service.ClientInput{
		Name:       "Copy Cat",
		PAN:        "ABCDE1234F",
		ClientType: "Individual",
	})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, domain.ErrDuplicatePAN)
}

func TestClientService_Delete_RequiresAdmin(t *testing.T) {
	svc, repo, _ := newClientService()

	err := svc.Delete(context.Background(), staff, uuid.New())

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientService_Delete_BlockedByPendingFees(t *testing.T) {
	svc, repo, fees := newClientService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).Return(&domain.Client{ID: id, TenantID: testTenant}, nil)
	fees.On("CountPendingByClient", mock.Anything, testTenant, id).Return(2, nil)

	err := svc.Delete(context.Background(), admin, id)

	assert.ErrorIs(t, err, domain.ErrClientHasOpenFees)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientService_Delete_Success(t *testing.T) {
	svc, repo, fees := newClientService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).Return(&domain.Client{ID: id, TenantID: testTenant}, nil)
	fees.On("CountPendingByClient", mock.Anything, testTenant, id).Return(0, nil)
	repo.On("Delete", mock.Anything, testTenant, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), admin, id))
	repo.AssertExpectations(t)
}

func TestClientService_Search_BlankTerm(t *testing.T) {
	svc, repo, _ := newClientService()

	clients, err := svc.Search(context.Background(), staff, "  ")

	require.NoError(t, err)
	assert.Empty(t, clients)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientService_Search_LimitsToTen(t *testing.T) {
	svc, repo, _ := newClientService()
	repo.On("List", mock.Anything, testTenant, domain.ListFilter{Search: "meh", Limit: 10}).
		Return([]domain.Client{{Name: "Mehta & Sons"}}, 1, nil)

	clients, err := svc.Search(context.Background(), staff, "meh")

	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestClientService_SetStatus(t *testing.T) {
	svc, repo, _ := newClientService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).
		Return(&domain.Client{ID: id, Status: domain.ClientStatusActive}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	client, err := svc.SetStatus(context.Background(), staff, id, domain.ClientStatusInactive)

	require.NoError(t, err)
	assert.Equal(t, domain.ClientStatusInactive, client.Status)
}

func TestClientService_SetStatus_Unknown(t *testing.T) {
	svc, repo, _ := newClientService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).
		Return(&domain.Client{ID: id, Status: domain.ClientStatusActive}, nil)

	_, err := svc.SetStatus(context.Background(), staff, id, domain.ClientStatus("Archived"))

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
