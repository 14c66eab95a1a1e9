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

type templateRepo struct {
	db *sqlx.DB
}

// NewTemplateRepo creates a new PostgreSQL-backed TemplateRepository.
func NewTemplateRepo(db *sqlx.DB) port.TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, tmpl *domain.MessageTemplate) error {
	if tmpl.ID == uuid.Nil {
		tmpl.ID = uuid.New()
	}
	now := time.Now().UTC()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	query := `INSERT INTO message_templates (id, tenant_id, name, channel, subject, content, is_active,
		created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :name, :channel, :subject, :content, :is_active,
		:created_by, :updated_by, :created_at, :updated_at)`
	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, tmpl); err != nil {
		return fmt.Errorf("templateRepo.Create: %w", err)
	}
	return nil
}

func (r *templateRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.MessageTemplate, error) {
	var tmpl domain.MessageTemplate
	err := conn(ctx, r.db).GetContext(ctx, &tmpl,
		"SELECT * FROM message_templates WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("templateRepo.GetByID: %w", err)
	}
	return &tmpl, nil
}

func (r *templateRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.MessageTemplate, int, error) {
	w := tenantWhere(tenantID)
	w.eq("channel", filter.Kind)
	switch filter.Status {
	case "active":
		w.add("is_active = $%d", true)
	case "inactive":
		w.add("is_active = $%d", false)
	}
	w.search(filter.Search, "name", "subject")

	tmpls, total, err := selectPage[domain.MessageTemplate](ctx, conn(ctx, r.db), "message_templates", w,
		"name ASC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("templateRepo.List: %w", err)
	}
	return tmpls, total, nil
}

func (r *templateRepo) Update(ctx context.Context, tmpl *domain.MessageTemplate) error {
	tmpl.UpdatedAt = time.Now().UTC()
	query := `UPDATE message_templates SET name = :name, channel = :channel, subject = :subject,
		content = :content, is_active = :is_active, updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`
	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, tmpl)
	if err != nil {
		return fmt.Errorf("templateRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *templateRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM message_templates WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("templateRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
