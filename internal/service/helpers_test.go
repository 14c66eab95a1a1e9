package service_test

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
	"taxdesk/internal/validator"
)

var (
	testTenant = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testUser   = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	staff = domain.Actor{TenantID: testTenant, UserID: testUser, Role: domain.RoleStaff}
	admin = domain.Actor{TenantID: testTenant, UserID: testUser, Role: domain.RoleAdmin}
)

// fixedNow is 10:30 IST on 15 June 2025, expressed in UTC.
var fixedNow = time.Date(2025, 6, 15, 5, 0, 0, 0, time.UTC)

func fixedClock() service.Clock {
	return func() time.Time { return fixedNow }
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newValidator() *validator.Validator { return validator.New() }

func nopLogger() *zap.Logger { return zap.NewNop() }
