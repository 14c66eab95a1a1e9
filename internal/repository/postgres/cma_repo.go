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

type cmaReportRepo struct {
	db *sqlx.DB
}

// NewCMAReportRepo creates a new PostgreSQL-backed CMAReportRepository.
func NewCMAReportRepo(db *sqlx.DB) port.CMAReportRepository {
	return &cmaReportRepo{db: db}
}

func (r *cmaReportRepo) Create(ctx context.Context, report *domain.CMAReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	query := `INSERT INTO cma_reports (id, tenant_id, client_id, reporting_period, report_date, bank_name,
		working_capital_limit, utilized_amount, cash_credit_limit, overdraft_limit, bill_discounting_limit,
		letter_of_credit, bank_guarantee, inventory_value, receivables_value, status, remarks,
		created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :reporting_period, :report_date, :bank_name,
		:working_capital_limit, :utilized_amount, :cash_credit_limit, :overdraft_limit, :bill_discounting_limit,
		:letter_of_credit, :bank_guarantee, :inventory_value, :receivables_value, :status, :remarks,
		:created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("cmaReportRepo.Create: %w", err)
	}
	return nil
}

func (r *cmaReportRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.CMAReport, error) {
	var report domain.CMAReport
	err := conn(ctx, r.db).GetContext(ctx, &report,
		"SELECT * FROM cma_reports WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("cmaReportRepo.GetByID: %w", err)
	}
	return &report, nil
}

func (r *cmaReportRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.CMAReport, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("reporting_period", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "bank_name", "remarks")
	w.between("report_date", filter.From, filter.To)

	reports, total, err := selectPage[domain.CMAReport](ctx, conn(ctx, r.db), "cma_reports", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("cmaReportRepo.List: %w", err)
	}
	return reports, total, nil
}

func (r *cmaReportRepo) Update(ctx context.Context, report *domain.CMAReport) error {
	report.UpdatedAt = time.Now().UTC()
	query := `UPDATE cma_reports SET reporting_period = :reporting_period, report_date = :report_date,
		bank_name = :bank_name, working_capital_limit = :working_capital_limit,
		utilized_amount = :utilized_amount, cash_credit_limit = :cash_credit_limit,
		overdraft_limit = :overdraft_limit, bill_discounting_limit = :bill_discounting_limit,
		letter_of_credit = :letter_of_credit, bank_guarantee = :bank_guarantee,
		inventory_value = :inventory_value, receivables_value = :receivables_value,
		status = :status, remarks = :remarks, updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, report)
	if err != nil {
		return fmt.Errorf("cmaReportRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *cmaReportRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM cma_reports WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("cmaReportRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
