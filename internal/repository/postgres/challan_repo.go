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

type challanRepo struct {
	db *sqlx.DB
}

// NewChallanRepo creates a new PostgreSQL-backed ChallanRepository.
func NewChallanRepo(db *sqlx.DB) port.ChallanRepository {
	return &challanRepo{db: db}
}

func (r *challanRepo) writeErr(op string, err error) error {
	if _, dup := uniqueViolation(err); dup {
		return domain.ErrDuplicateChallan
	}
	return fmt.Errorf("challanRepo.%s: %w", op, err)
}

func (r *challanRepo) Create(ctx context.Context, challan *domain.ChallanPayment) error {
	if challan.ID == uuid.Nil {
		challan.ID = uuid.New()
	}
	now := time.Now().UTC()
	challan.CreatedAt = now
	challan.UpdatedAt = now

	query := `INSERT INTO challan_payments (id, tenant_id, client_id, challan_number, challan_type, tax_type,
		assessment_year, amount, payment_date, bank_name, bank_branch, bsr_code, serial_number,
		status, cleared_at, remarks, created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :challan_number, :challan_type, :tax_type,
		:assessment_year, :amount, :payment_date, :bank_name, :bank_branch, :bsr_code, :serial_number,
		:status, :cleared_at, :remarks, :created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, challan); err != nil {
		return r.writeErr("Create", err)
	}
	return nil
}

func (r *challanRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ChallanPayment, error) {
	var challan domain.ChallanPayment
	err := conn(ctx, r.db).GetContext(ctx, &challan,
		"SELECT * FROM challan_payments WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("challanRepo.GetByID: %w", err)
	}
	return &challan, nil
}

func (r *challanRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ChallanPayment, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("tax_type", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "challan_number", "bsr_code", "bank_name", "assessment_year")
	w.between("payment_date", filter.From, filter.To)

	challans, total, err := selectPage[domain.ChallanPayment](ctx, conn(ctx, r.db), "challan_payments", w,
		"payment_date DESC, created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("challanRepo.List: %w", err)
	}
	return challans, total, nil
}

func (r *challanRepo) Update(ctx context.Context, challan *domain.ChallanPayment) error {
	challan.UpdatedAt = time.Now().UTC()
	query := `UPDATE challan_payments SET challan_number = :challan_number, challan_type = :challan_type,
		tax_type = :tax_type, assessment_year = :assessment_year, amount = :amount,
		payment_date = :payment_date, bank_name = :bank_name, bank_branch = :bank_branch,
		bsr_code = :bsr_code, serial_number = :serial_number, status = :status,
		cleared_at = :cleared_at, remarks = :remarks, updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, challan)
	if err != nil {
		return r.writeErr("Update", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *challanRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM challan_payments WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("challanRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
