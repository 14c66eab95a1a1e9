package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor identifies the caller of a service operation. Every operation is
// scoped to Actor.TenantID and mutations are stamped with Actor.UserID.
type Actor struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Role     UserRole
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// ListFilter narrows list queries. Empty fields do not filter; a zero Limit
// returns every matching row.
type ListFilter struct {
	Search   string
	Status   string
	Kind     string
	ClientID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Offset   int
	Limit    int
}
