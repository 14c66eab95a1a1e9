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

type commLogRepo struct {
	db *sqlx.DB
}

// NewCommunicationLogRepo creates a new PostgreSQL-backed CommunicationLogRepository.
func NewCommunicationLogRepo(db *sqlx.DB) port.CommunicationLogRepository {
	return &commLogRepo{db: db}
}

func (r *commLogRepo) Create(ctx context.Context, log *domain.CommunicationLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	query := `INSERT INTO communication_logs (id, tenant_id, client_id, template_id, channel, recipient,
		subject, body, status, error, sent_at, created_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :template_id, :channel, :recipient,
		:subject, :body, :status, :error, :sent_at, :created_by, :created_at, :updated_at)`
	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("commLogRepo.Create: %w", err)
	}
	return nil
}

func (r *commLogRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.CommunicationLog, error) {
	var log domain.CommunicationLog
	err := conn(ctx, r.db).GetContext(ctx, &log,
		"SELECT * FROM communication_logs WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("commLogRepo.GetByID: %w", err)
	}
	return &log, nil
}

func (r *commLogRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.CommunicationLog, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("channel", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "recipient", "subject")
	w.between("created_at", filter.From, filter.To)

	logs, total, err := selectPage[domain.CommunicationLog](ctx, conn(ctx, r.db), "communication_logs", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("commLogRepo.List: %w", err)
	}
	return logs, total, nil
}

func (r *commLogRepo) UpdateStatus(ctx context.Context, log *domain.CommunicationLog) error {
	log.UpdatedAt = time.Now().UTC()
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE communication_logs SET status = $1, error = $2, sent_at = $3, updated_at = $4
		WHERE id = $5 AND tenant_id = $6`,
		log.Status, log.Error, log.SentAt, log.UpdatedAt, log.ID, log.TenantID)
	if err != nil {
		return fmt.Errorf("commLogRepo.UpdateStatus: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
