package mocks

import (
	"context"

	"taxdesk/internal/port"
)

// Transactor is a port.Transactor that runs fn directly on the caller's
// context and counts how many transactions were opened.
type Transactor struct {
	Calls int
}

var _ port.Transactor = (*Transactor)(nil)

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}
