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

type filingRepo struct {
	db *sqlx.DB
}

// NewFilingRepo creates a new PostgreSQL-backed FilingRepository.
func NewFilingRepo(db *sqlx.DB) port.FilingRepository {
	return &filingRepo{db: db}
}

func (r *filingRepo) Create(ctx context.Context, filing *domain.ReturnFiling) error {
	if filing.ID == uuid.Nil {
		filing.ID = uuid.New()
	}
	now := time.Now().UTC()
	filing.CreatedAt = now
	filing.UpdatedAt = now

	query := `INSERT INTO return_filings (id, tenant_id, client_id, kind, form_type, period, sub_period,
		tan, gstin, due_date, filing_date, status, acknowledgment_number, taxable_amount, tax_amount,
		refund_amount, late_fee, transaction_count, filing_category, validation_status,
		validation_errors, document_id, remarks, created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :kind, :form_type, :period, :sub_period,
		:tan, :gstin, :due_date, :filing_date, :status, :acknowledgment_number, :taxable_amount, :tax_amount,
		:refund_amount, :late_fee, :transaction_count, :filing_category, :validation_status,
		:validation_errors, :document_id, :remarks, :created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, filing); err != nil {
		return fmt.Errorf("filingRepo.Create: %w", err)
	}
	return nil
}

func (r *filingRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ReturnFiling, error) {
	var filing domain.ReturnFiling
	err := conn(ctx, r.db).GetContext(ctx, &filing,
		"SELECT * FROM return_filings WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("filingRepo.GetByID: %w", err)
	}
	return &filing, nil
}

func (r *filingRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ReturnFiling, int, error) {
	w := tenantWhere(tenantID)
	w.eq("kind", filter.Kind)
	w.eq("status", filter.Status)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "form_type", "period", "acknowledgment_number", "tan", "gstin")
	w.between("due_date", filter.From, filter.To)

	filings, total, err := selectPage[domain.ReturnFiling](ctx, conn(ctx, r.db), "return_filings", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("filingRepo.List: %w", err)
	}
	return filings, total, nil
}

func (r *filingRepo) ListUnsettled(ctx context.Context, tenantID uuid.UUID) ([]domain.ReturnFiling, error) {
	filings := []domain.ReturnFiling{}
	err := conn(ctx, r.db).SelectContext(ctx, &filings,
		`SELECT * FROM return_filings
		WHERE tenant_id = $1 AND status NOT IN ($2, $3, $4)
		ORDER BY due_date ASC NULLS LAST, created_at ASC`,
		tenantID, domain.FilingStatusFiled, domain.FilingStatusProcessed, domain.FilingStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("filingRepo.ListUnsettled: %w", err)
	}
	return filings, nil
}

func (r *filingRepo) Update(ctx context.Context, filing *domain.ReturnFiling) error {
	filing.UpdatedAt = time.Now().UTC()
	query := `UPDATE return_filings SET form_type = :form_type, period = :period, sub_period = :sub_period,
		tan = :tan, gstin = :gstin, due_date = :due_date, filing_date = :filing_date, status = :status,
		acknowledgment_number = :acknowledgment_number, taxable_amount = :taxable_amount,
		tax_amount = :tax_amount, refund_amount = :refund_amount, late_fee = :late_fee,
		transaction_count = :transaction_count, filing_category = :filing_category,
		validation_status = :validation_status, validation_errors = :validation_errors,
		document_id = :document_id, remarks = :remarks, updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, filing)
	if err != nil {
		return fmt.Errorf("filingRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *filingRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM return_filings WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("filingRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
