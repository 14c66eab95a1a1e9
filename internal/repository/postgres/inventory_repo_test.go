package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/repository/postgres"
)

func TestInventoryRepo_GetForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewInventoryRepo(db)
	tenantID, id := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM inventory_items WHERE id = \$1 AND tenant_id = \$2 FOR UPDATE`).
		WithArgs(id, tenantID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "current_stock", "minimum_stock", "stock_status"}).
			AddRow(id.String(), "A4 Paper", 3, 5, "Low Stock"))

	item, err := repo.GetForUpdate(context.Background(), tenantID, id)

	require.NoError(t, err)
	assert.Equal(t, 3, item.CurrentStock)
	assert.Equal(t, domain.StockStatusLow, item.StockStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepo_Create_DuplicateCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewInventoryRepo(db)

	mock.ExpectExec(`INSERT INTO inventory_items`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_inventory_items_tenant_code"})

	code := "PAP-01"
	err := repo.Create(context.Background(), &domain.InventoryItem{TenantID: uuid.New(), ItemCode: &code, Name: "Paper"})
	assert.ErrorIs(t, err, domain.ErrDuplicateItemCode)
}

func TestInventoryRepo_List_CategoryAndStockStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewInventoryRepo(db)
	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM inventory_items WHERE tenant_id = \$1 AND category = \$2 AND stock_status = \$3`).
		WithArgs(tenantID, "Stationery", "Out of Stock").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM inventory_items WHERE .* ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uuid.New().String(), "Pens"))

	items, total, err := repo.List(context.Background(), tenantID,
		domain.ListFilter{Kind: "Stationery", Status: "Out of Stock"})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Pens", items[0].Name)
}
