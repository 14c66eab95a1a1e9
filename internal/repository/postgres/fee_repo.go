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

type feeRepo struct {
	db *sqlx.DB
}

// NewFeeRepo creates a new PostgreSQL-backed FeeRepository.
func NewFeeRepo(db *sqlx.DB) port.FeeRepository {
	return &feeRepo{db: db}
}

func (r *feeRepo) Create(ctx context.Context, fee *domain.OutstandingFee) error {
	if fee.ID == uuid.Nil {
		fee.ID = uuid.New()
	}
	now := time.Now().UTC()
	fee.CreatedAt = now
	fee.UpdatedAt = now

	query := `INSERT INTO outstanding_fees (id, tenant_id, client_id, service_type, amount, due_date,
		status, invoice_number, paid_at, notes, created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :service_type, :amount, :due_date,
		:status, :invoice_number, :paid_at, :notes, :created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, fee); err != nil {
		if _, dup := uniqueViolation(err); dup {
			return domain.ErrDuplicateInvoice
		}
		return fmt.Errorf("feeRepo.Create: %w", err)
	}
	return nil
}

func (r *feeRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.OutstandingFee, error) {
	var fee domain.OutstandingFee
	err := conn(ctx, r.db).GetContext(ctx, &fee,
		"SELECT * FROM outstanding_fees WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("feeRepo.GetByID: %w", err)
	}
	return &fee, nil
}

func (r *feeRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.OutstandingFee, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("service_type", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "invoice_number", "service_type", "notes")
	w.between("due_date", filter.From, filter.To)

	fees, total, err := selectPage[domain.OutstandingFee](ctx, conn(ctx, r.db), "outstanding_fees", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("feeRepo.List: %w", err)
	}
	return fees, total, nil
}

func (r *feeRepo) Update(ctx context.Context, fee *domain.OutstandingFee) error {
	fee.UpdatedAt = time.Now().UTC()
	query := `UPDATE outstanding_fees SET service_type = :service_type, amount = :amount,
		due_date = :due_date, status = :status, paid_at = :paid_at, notes = :notes,
		updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, fee)
	if err != nil {
		return fmt.Errorf("feeRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *feeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM outstanding_fees WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("feeRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *feeRepo) CountPendingByClient(ctx context.Context, tenantID, clientID uuid.UUID) (int, error) {
	var n int
	err := conn(ctx, r.db).GetContext(ctx, &n,
		"SELECT COUNT(*) FROM outstanding_fees WHERE tenant_id = $1 AND client_id = $2 AND status = $3",
		tenantID, clientID, domain.FeeStatusPending)
	if err != nil {
		return 0, fmt.Errorf("feeRepo.CountPendingByClient: %w", err)
	}
	return n, nil
}
