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

type payrollRepo struct {
	db *sqlx.DB
}

// NewPayrollRepo creates a new PostgreSQL-backed PayrollRepository.
func NewPayrollRepo(db *sqlx.DB) port.PayrollRepository {
	return &payrollRepo{db: db}
}

func (r *payrollRepo) Create(ctx context.Context, entry *domain.PayrollEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now().UTC()

	query := `INSERT INTO payroll_entries (id, tenant_id, employee_id, month_year, basic_salary,
		allowances, deductions, pf_deduction, tds_deduction, net_salary, created_by, created_at)
		VALUES (:id, :tenant_id, :employee_id, :month_year, :basic_salary,
		:allowances, :deductions, :pf_deduction, :tds_deduction, :net_salary, :created_by, :created_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, entry); err != nil {
		if _, dup := uniqueViolation(err); dup {
			return domain.ErrDuplicatePayroll
		}
		return fmt.Errorf("payrollRepo.Create: %w", err)
	}
	return nil
}

func (r *payrollRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PayrollEntry, error) {
	var entry domain.PayrollEntry
	err := conn(ctx, r.db).GetContext(ctx, &entry,
		"SELECT * FROM payroll_entries WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("payrollRepo.GetByID: %w", err)
	}
	return &entry, nil
}

func (r *payrollRepo) List(ctx context.Context, tenantID uuid.UUID, monthYear string, filter domain.ListFilter) ([]domain.PayrollEntry, int, error) {
	w := tenantWhere(tenantID)
	w.eq("month_year", monthYear)
	w.eqID("employee_id", filter.ClientID)

	entries, total, err := selectPage[domain.PayrollEntry](ctx, conn(ctx, r.db), "payroll_entries", w,
		"month_year DESC, created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("payrollRepo.List: %w", err)
	}
	return entries, total, nil
}

func (r *payrollRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM payroll_entries WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("payrollRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
