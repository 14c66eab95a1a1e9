package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func TestCommunicationHandler_Send_FailedDeliveryStillCreated(t *testing.T) {
	svc := new(mocks.MockCommunicationService)
	h := handler.NewCommunicationHandler(svc)
	actor := staffActor()
	clientID, templateID := uuid.New(), uuid.New()

	svc.On("Send", mock.Anything, actor, mock.MatchedBy(func(in service.SendInput) bool {
		return in.ClientID == clientID && in.TemplateID != nil && *in.TemplateID == templateID
	})).Return(&domain.CommunicationLog{
		ID:     uuid.New(),
		Status: domain.CommunicationFailed,
		Error:  "ses: throttled",
	}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/communications/send", map[string]string{
		"client_id":   clientID.String(),
		"template_id": templateID.String(),
	}, &actor)
	h.Send(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Failed"`)
	svc.AssertExpectations(t)
}

func TestCommunicationHandler_Send_NoRecipient(t *testing.T) {
	svc := new(mocks.MockCommunicationService)
	h := handler.NewCommunicationHandler(svc)
	actor := staffActor()
	svc.On("Send", mock.Anything, actor, mock.Anything).Return(nil, domain.ErrNoRecipient)

	c, w := newContext(t, http.MethodPost, "/api/v1/communications/send", map[string]string{
		"client_id": uuid.New().String(),
		"body":      "Hello",
	}, &actor)
	h.Send(c)

	requireErrorCode(t, w, http.StatusUnprocessableEntity, "NO_RECIPIENT")
}

func TestCommunicationHandler_Retry(t *testing.T) {
	svc := new(mocks.MockCommunicationService)
	h := handler.NewCommunicationHandler(svc)
	actor := staffActor()
	id := uuid.New()
	svc.On("Retry", mock.Anything, actor, id).
		Return(&domain.CommunicationLog{ID: id, Status: domain.CommunicationSent}, nil)

	c, w := newContext(t, http.MethodPost, "/", nil, &actor)
	withID(c, id)
	h.Retry(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
