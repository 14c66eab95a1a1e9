package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taxdesk/internal/domain"
)

// Clock returns the current time. Services take one so that date-derived
// values (overdue flags, invoice numbers, windows) are reproducible.
type Clock func() time.Time

// StatusInput is the DTO for a plain status change.
type StatusInput struct {
	Status string `json:"status" validate:"required"`
}

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// optionalString returns nil for blank input so that partial unique
// indexes ignore it.
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// mustDate parses a date already checked by the datetime tag.
func mustDate(s string) *time.Time {
	t, err := domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return t
}

func parseOptionalID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
