package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/repository/postgres"
)

func TestChallanRepo_Create_DuplicateNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewChallanRepo(db)

	mock.ExpectExec(`INSERT INTO challan_payments`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_challan_payments_tenant_number"})

	err := repo.Create(context.Background(), &domain.ChallanPayment{
		TenantID: uuid.New(), ClientID: uuid.New(), ChallanNumber: "28100-00042",
		Amount: decimal.NewFromInt(15000),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateChallan)
}

func TestChallanRepo_Create_AssignsIDAndTimestamps(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewChallanRepo(db)

	mock.ExpectExec(`INSERT INTO challan_payments`).WillReturnResult(sqlmock.NewResult(0, 1))

	challan := &domain.ChallanPayment{TenantID: uuid.New(), ClientID: uuid.New(), ChallanNumber: "00042"}
	require.NoError(t, repo.Create(context.Background(), challan))
	assert.NotEqual(t, uuid.Nil, challan.ID)
	assert.False(t, challan.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChallanRepo_List_FiltersTaxTypeAndPaymentDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewChallanRepo(db)
	tenantID := uuid.New()
	from := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM challan_payments WHERE tenant_id = \$1 AND status = \$2 AND tax_type = \$3 AND payment_date >= \$4 AND payment_date < \$5$`).
		WithArgs(tenantID, "Pending", "TDS", from, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM challan_payments WHERE .* ORDER BY payment_date DESC, created_at DESC LIMIT \$6 OFFSET \$7`).
		WithArgs(tenantID, "Pending", "TDS", from, end, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "challan_number", "amount", "status"}).
			AddRow(uuid.New().String(), "00042", "15000.00", "Pending"))

	challans, total, err := repo.List(context.Background(), tenantID, domain.ListFilter{
		Status: "Pending", Kind: "TDS", From: &from, To: &to, Limit: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, challans, 1)
	assert.True(t, decimal.NewFromInt(15000).Equal(challans[0].Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChallanRepo_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewChallanRepo(db)

	mock.ExpectExec(`UPDATE challan_payments SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.ChallanPayment{ID: uuid.New(), TenantID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
