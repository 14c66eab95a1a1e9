package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

type inventoryRepo struct {
	db *sqlx.DB
}

// NewInventoryRepo creates a new PostgreSQL-backed InventoryRepository.
func NewInventoryRepo(db *sqlx.DB) port.InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO inventory_items (id, tenant_id, item_code, name, description, unit, unit_price,
		current_stock, minimum_stock, location, category, stock_status,
		created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :item_code, :name, :description, :unit, :unit_price,
		:current_stock, :minimum_stock, :location, :category, :stock_status,
		:created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, item); err != nil {
		if _, dup := uniqueViolation(err); dup {
			return domain.ErrDuplicateItemCode
		}
		return fmt.Errorf("inventoryRepo.Create: %w", err)
	}
	return nil
}

func (r *inventoryRepo) get(ctx context.Context, op, query string, tenantID, id uuid.UUID) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	if err := conn(ctx, r.db).GetContext(ctx, &item, query, id, tenantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("inventoryRepo.%s: %w", op, err)
	}
	return &item, nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.InventoryItem, error) {
	return r.get(ctx, "GetByID",
		"SELECT * FROM inventory_items WHERE id = $1 AND tenant_id = $2", tenantID, id)
}

func (r *inventoryRepo) GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*domain.InventoryItem, error) {
	return r.get(ctx, "GetForUpdate",
		"SELECT * FROM inventory_items WHERE id = $1 AND tenant_id = $2 FOR UPDATE", tenantID, id)
}

func (r *inventoryRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.InventoryItem, int, error) {
	w := tenantWhere(tenantID)
	w.eq("category", filter.Kind)
	w.eq("stock_status", filter.Status)
	w.search(filter.Search, "name", "item_code", "description", "location")

	items, total, err := selectPage[domain.InventoryItem](ctx, conn(ctx, r.db), "inventory_items", w,
		"name ASC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("inventoryRepo.List: %w", err)
	}
	return items, total, nil
}

func (r *inventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) error {
	item.UpdatedAt = time.Now().UTC()
	query := `UPDATE inventory_items SET item_code = :item_code, name = :name, description = :description,
		unit = :unit, unit_price = :unit_price, current_stock = :current_stock,
		minimum_stock = :minimum_stock, location = :location, category = :category,
		stock_status = :stock_status, updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, item)
	if err != nil {
		if _, dup := uniqueViolation(err); dup {
			return domain.ErrDuplicateItemCode
		}
		return fmt.Errorf("inventoryRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *inventoryRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM inventory_items WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("inventoryRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
