package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/mocks"
)

func TestReminderHandler_Upcoming(t *testing.T) {
	tests := []struct {
		name  string
		query string
		days  int
	}{
		{"default", "", 7},
		{"explicit", "?days=30", 30},
		{"garbage falls back", "?days=soon", 7},
		{"negative falls back", "?days=-2", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockReminderService)
			h := handler.NewReminderHandler(svc)
			actor := staffActor()
			svc.On("Upcoming", mock.Anything, actor, tt.days).Return([]domain.Reminder{}, nil)

			c, w := newContext(t, http.MethodGet, "/api/v1/reminders/upcoming"+tt.query, nil, &actor)
			h.Upcoming(c)

			assert.Equal(t, http.StatusOK, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestReminderHandler_Complete_AlreadyDone(t *testing.T) {
	svc := new(mocks.MockReminderService)
	h := handler.NewReminderHandler(svc)
	actor := staffActor()
	id := uuid.New()
	svc.On("Complete", mock.Anything, actor, id).Return(nil, domain.ErrInvalidTransition)

	c, w := newContext(t, http.MethodPost, "/", nil, &actor)
	withID(c, id)
	h.Complete(c)

	requireErrorCode(t, w, http.StatusConflict, "INVALID_TRANSITION")
}

func TestReminderHandler_FollowUps(t *testing.T) {
	svc := new(mocks.MockReminderService)
	h := handler.NewReminderHandler(svc)
	actor := staffActor()
	svc.On("FollowUps", mock.Anything, actor).
		Return([]domain.Reminder{{ID: uuid.New(), Title: "Call about TDS"}}, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/reminders/follow-ups", nil, &actor)
	h.FollowUps(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Call about TDS")
}
