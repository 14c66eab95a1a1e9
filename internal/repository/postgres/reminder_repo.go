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

type reminderRepo struct {
	db *sqlx.DB
}

// NewReminderRepo creates a new PostgreSQL-backed ReminderRepository.
func NewReminderRepo(db *sqlx.DB) port.ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(ctx context.Context, reminder *domain.Reminder) error {
	if reminder.ID == uuid.Nil {
		reminder.ID = uuid.New()
	}
	now := time.Now().UTC()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	query := `INSERT INTO reminders (id, tenant_id, client_id, title, description, reminder_date,
		reminder_type, status, created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :title, :description, :reminder_date,
		:reminder_type, :status, :created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, reminder); err != nil {
		return fmt.Errorf("reminderRepo.Create: %w", err)
	}
	return nil
}

func (r *reminderRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := conn(ctx, r.db).GetContext(ctx, &reminder,
		"SELECT * FROM reminders WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reminderRepo.GetByID: %w", err)
	}
	return &reminder, nil
}

func (r *reminderRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Reminder, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("reminder_type", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "title", "description")
	w.between("reminder_date", filter.From, filter.To)

	reminders, total, err := selectPage[domain.Reminder](ctx, conn(ctx, r.db), "reminders", w,
		"reminder_date ASC, created_at ASC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("reminderRepo.List: %w", err)
	}
	return reminders, total, nil
}

func (r *reminderRepo) Update(ctx context.Context, reminder *domain.Reminder) error {
	reminder.UpdatedAt = time.Now().UTC()
	query := `UPDATE reminders SET client_id = :client_id, title = :title, description = :description,
		reminder_date = :reminder_date, reminder_type = :reminder_type, status = :status,
		updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, reminder)
	if err != nil {
		return fmt.Errorf("reminderRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *reminderRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM reminders WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("reminderRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
