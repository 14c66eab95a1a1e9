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

func TestAssessmentHandler_ChangeStatus_Appeal(t *testing.T) {
	svc := new(mocks.MockAssessmentService)
	h := handler.NewAssessmentHandler(svc)
	actor := staffActor()
	id := uuid.New()
	input := service.AssessmentStatusInput{Status: "Appealed", AppealNumber: "CIT(A)/42/2025"}
	svc.On("ChangeStatus", mock.Anything, actor, id, input).
		Return(&domain.AssessmentOrder{ID: id, Status: domain.AssessmentStatusAppealed, AppealFiled: true}, nil)

	c, w := newContext(t, http.MethodPut, "/", map[string]string{
		"status": "Appealed", "appeal_number": "CIT(A)/42/2025",
	}, &actor)
	withID(c, id)
	h.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAssessmentHandler_Create_MalformedBody(t *testing.T) {
	svc := new(mocks.MockAssessmentService)
	h := handler.NewAssessmentHandler(svc)
	actor := staffActor()

	c, w := newContext(t, http.MethodPost, "/", []int{1, 2}, &actor)
	h.Create(c)

	requireErrorCode(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
