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

type checklistRepo struct {
	db *sqlx.DB
}

// NewChecklistRepo creates a new PostgreSQL-backed ChecklistRepository.
func NewChecklistRepo(db *sqlx.DB) port.ChecklistRepository {
	return &checklistRepo{db: db}
}

// Create inserts the checklist and its items. Callers wanting atomicity
// run it inside Transactor.WithinTx.
func (r *checklistRepo) Create(ctx context.Context, checklist *domain.DocumentChecklist) error {
	if checklist.ID == uuid.Nil {
		checklist.ID = uuid.New()
	}
	now := time.Now().UTC()
	checklist.CreatedAt = now
	checklist.UpdatedAt = now

	q := conn(ctx, r.db)
	query := `INSERT INTO document_checklists (id, tenant_id, client_id, title, financial_year,
		due_date, status, created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :title, :financial_year,
		:due_date, :status, :created_by, :updated_by, :created_at, :updated_at)`
	if _, err := q.NamedExecContext(ctx, query, checklist); err != nil {
		return fmt.Errorf("checklistRepo.Create: %w", err)
	}

	for i := range checklist.Items {
		item := &checklist.Items[i]
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.ChecklistID = checklist.ID
		item.Position = i
		_, err := q.ExecContext(ctx,
			`INSERT INTO checklist_items (id, checklist_id, name, received, received_at, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.ChecklistID, item.Name, item.Received, item.ReceivedAt, item.Position)
		if err != nil {
			return fmt.Errorf("checklistRepo.Create item: %w", err)
		}
	}
	return nil
}

func (r *checklistRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DocumentChecklist, error) {
	var checklist domain.DocumentChecklist
	err := conn(ctx, r.db).GetContext(ctx, &checklist,
		"SELECT * FROM document_checklists WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("checklistRepo.GetByID: %w", err)
	}
	if err := r.loadItems(ctx, []*domain.DocumentChecklist{&checklist}); err != nil {
		return nil, fmt.Errorf("checklistRepo.GetByID: %w", err)
	}
	return &checklist, nil
}

func (r *checklistRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.DocumentChecklist, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("financial_year", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "title")

	checklists, total, err := selectPage[domain.DocumentChecklist](ctx, conn(ctx, r.db), "document_checklists", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("checklistRepo.List: %w", err)
	}

	ptrs := make([]*domain.DocumentChecklist, len(checklists))
	for i := range checklists {
		ptrs[i] = &checklists[i]
	}
	if err := r.loadItems(ctx, ptrs); err != nil {
		return nil, 0, fmt.Errorf("checklistRepo.List: %w", err)
	}
	return checklists, total, nil
}

// loadItems fetches the items of every checklist in one query and refreshes progress.
func (r *checklistRepo) loadItems(ctx context.Context, checklists []*domain.DocumentChecklist) error {
	if len(checklists) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(checklists))
	byID := make(map[uuid.UUID]*domain.DocumentChecklist, len(checklists))
	for i, c := range checklists {
		ids[i] = c.ID
		byID[c.ID] = c
		c.Items = []domain.ChecklistItem{}
	}

	query, args, err := sqlx.In(
		"SELECT * FROM checklist_items WHERE checklist_id IN (?) ORDER BY checklist_id, position", ids)
	if err != nil {
		return fmt.Errorf("build items query: %w", err)
	}
	q := conn(ctx, r.db)
	var items []domain.ChecklistItem
	if err := q.SelectContext(ctx, &items, q.Rebind(query), args...); err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	for _, item := range items {
		if c, ok := byID[item.ChecklistID]; ok {
			c.Items = append(c.Items, item)
		}
	}
	for _, c := range checklists {
		c.RefreshProgress()
	}
	return nil
}

func (r *checklistRepo) UpdateStatus(ctx context.Context, checklist *domain.DocumentChecklist) error {
	checklist.UpdatedAt = time.Now().UTC()
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE document_checklists SET status = $1, updated_by = $2, updated_at = $3
		WHERE id = $4 AND tenant_id = $5`,
		checklist.Status, checklist.UpdatedBy, checklist.UpdatedAt, checklist.ID, checklist.TenantID)
	if err != nil {
		return fmt.Errorf("checklistRepo.UpdateStatus: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *checklistRepo) SetItemReceived(ctx context.Context, checklistID, itemID uuid.UUID, received bool) error {
	var receivedAt *time.Time
	if received {
		now := time.Now().UTC()
		receivedAt = &now
	}
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"UPDATE checklist_items SET received = $1, received_at = $2 WHERE id = $3 AND checklist_id = $4",
		received, receivedAt, itemID, checklistID)
	if err != nil {
		return fmt.Errorf("checklistRepo.SetItemReceived: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *checklistRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM document_checklists WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("checklistRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
