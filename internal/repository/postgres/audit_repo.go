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

type auditRepo struct {
	db *sqlx.DB
}

// NewAuditRepo creates a new PostgreSQL-backed AuditRepository.
func NewAuditRepo(db *sqlx.DB) port.AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Create(ctx context.Context, audit *domain.BalanceSheetAudit) error {
	if audit.ID == uuid.Nil {
		audit.ID = uuid.New()
	}
	now := time.Now().UTC()
	audit.CreatedAt = now
	audit.UpdatedAt = now

	query := `INSERT INTO balance_sheet_audits (id, tenant_id, client_id, financial_year, audit_type,
		balance_sheet_date, audit_completion_date, auditor_name, auditor_membership_no, opinion_type,
		key_audit_matters, management_letter_issued, status, created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :financial_year, :audit_type,
		:balance_sheet_date, :audit_completion_date, :auditor_name, :auditor_membership_no, :opinion_type,
		:key_audit_matters, :management_letter_issued, :status, :created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, audit); err != nil {
		return fmt.Errorf("auditRepo.Create: %w", err)
	}
	return nil
}

func (r *auditRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.BalanceSheetAudit, error) {
	var audit domain.BalanceSheetAudit
	err := conn(ctx, r.db).GetContext(ctx, &audit,
		"SELECT * FROM balance_sheet_audits WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("auditRepo.GetByID: %w", err)
	}
	return &audit, nil
}

func (r *auditRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.BalanceSheetAudit, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("audit_type", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "auditor_name", "financial_year", "auditor_membership_no")
	w.between("balance_sheet_date", filter.From, filter.To)

	audits, total, err := selectPage[domain.BalanceSheetAudit](ctx, conn(ctx, r.db), "balance_sheet_audits", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("auditRepo.List: %w", err)
	}
	return audits, total, nil
}

func (r *auditRepo) Update(ctx context.Context, audit *domain.BalanceSheetAudit) error {
	audit.UpdatedAt = time.Now().UTC()
	query := `UPDATE balance_sheet_audits SET financial_year = :financial_year, audit_type = :audit_type,
		balance_sheet_date = :balance_sheet_date, audit_completion_date = :audit_completion_date,
		auditor_name = :auditor_name, auditor_membership_no = :auditor_membership_no,
		opinion_type = :opinion_type, key_audit_matters = :key_audit_matters,
		management_letter_issued = :management_letter_issued, status = :status,
		updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, audit)
	if err != nil {
		return fmt.Errorf("auditRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *auditRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM balance_sheet_audits WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("auditRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
