package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a unique constraint violation and
// returns the violated constraint name (or the raw message when the driver
// error is not available).
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == pgUniqueViolation
	}
	if strings.Contains(err.Error(), "duplicate key") {
		return err.Error(), true
	}
	return "", false
}
