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

type clientNoteRepo struct {
	db *sqlx.DB
}

// NewClientNoteRepo creates a new PostgreSQL-backed ClientNoteRepository.
func NewClientNoteRepo(db *sqlx.DB) port.ClientNoteRepository {
	return &clientNoteRepo{db: db}
}

func (r *clientNoteRepo) Create(ctx context.Context, note *domain.ClientNote) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	query := `INSERT INTO client_notes (id, tenant_id, client_id, title, content, category, pinned,
		created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :title, :content, :category, :pinned,
		:created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("clientNoteRepo.Create: %w", err)
	}
	return nil
}

func (r *clientNoteRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ClientNote, error) {
	var note domain.ClientNote
	err := conn(ctx, r.db).GetContext(ctx, &note,
		"SELECT * FROM client_notes WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientNoteRepo.GetByID: %w", err)
	}
	return &note, nil
}

func (r *clientNoteRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ClientNote, int, error) {
	w := tenantWhere(tenantID)
	w.eq("category", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "title", "content")
	w.between("created_at", filter.From, filter.To)

	notes, total, err := selectPage[domain.ClientNote](ctx, conn(ctx, r.db), "client_notes", w,
		"pinned DESC, created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("clientNoteRepo.List: %w", err)
	}
	return notes, total, nil
}

func (r *clientNoteRepo) Update(ctx context.Context, note *domain.ClientNote) error {
	note.UpdatedAt = time.Now().UTC()
	query := `UPDATE client_notes SET title = :title, content = :content, category = :category,
		pinned = :pinned, updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, note)
	if err != nil {
		return fmt.Errorf("clientNoteRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *clientNoteRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM client_notes WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("clientNoteRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
