package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/repository/postgres"
)

func TestGSTINValidationRepo_Upsert_ReturnsStoredRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewGSTINValidationRepo(db)
	tenantID, userID, existingID := uuid.New(), uuid.New(), uuid.New()
	checkedAt := time.Date(2025, time.June, 15, 5, 0, 0, 0, time.UTC)

	v := &domain.GSTINValidation{
		TenantID: tenantID, GSTIN: "27ABCDE1234F1Z5", IsValid: true,
		StateCode: "27", StateName: "Maharashtra", EmbeddedPAN: "ABCDE1234F",
		Message: "GSTIN format is valid", LastCheckedBy: userID, LastValidated: checkedAt,
	}
	mock.ExpectQuery(`INSERT INTO gstin_validations .* ON CONFLICT \(tenant_id, gstin\) DO UPDATE SET .* check_count = gstin_validations.check_count \+ 1`).
		WithArgs(sqlmock.AnyArg(), tenantID, "27ABCDE1234F1Z5", true, "27", "Maharashtra",
			"ABCDE1234F", "GSTIN format is valid", userID, checkedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "gstin", "is_valid", "check_count", "last_validated"}).
			AddRow(existingID.String(), tenantID.String(), "27ABCDE1234F1Z5", true, 3, checkedAt))

	require.NoError(t, repo.Upsert(context.Background(), v))
	assert.Equal(t, existingID, v.ID)
	assert.Equal(t, 3, v.CheckCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGSTINValidationRepo_ListRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewGSTINValidationRepo(db)
	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM gstin_validations WHERE tenant_id = \$1\s+ORDER BY last_validated DESC LIMIT \$2`).
		WithArgs(tenantID, 10).
		WillReturnRows(sqlmock.NewRows([]string{"gstin", "is_valid"}).
			AddRow("27ABCDE1234F1Z5", true).
			AddRow("27ABC", false))

	got, err := repo.ListRecent(context.Background(), tenantID, 10)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[1].IsValid)
}
