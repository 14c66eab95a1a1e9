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

type assessmentRepo struct {
	db *sqlx.DB
}

// NewAssessmentRepo creates a new PostgreSQL-backed AssessmentRepository.
func NewAssessmentRepo(db *sqlx.DB) port.AssessmentRepository {
	return &assessmentRepo{db: db}
}

func (r *assessmentRepo) Create(ctx context.Context, order *domain.AssessmentOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `INSERT INTO assessment_orders (id, tenant_id, client_id, assessment_year, order_type,
		order_date, order_number, total_income_assessed, tax_demanded, interest_charged, penalty_imposed,
		appeal_filed, appeal_date, appeal_number, status, remarks, created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :client_id, :assessment_year, :order_type,
		:order_date, :order_number, :total_income_assessed, :tax_demanded, :interest_charged, :penalty_imposed,
		:appeal_filed, :appeal_date, :appeal_number, :status, :remarks, :created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, order); err != nil {
		return fmt.Errorf("assessmentRepo.Create: %w", err)
	}
	return nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.AssessmentOrder, error) {
	var order domain.AssessmentOrder
	err := conn(ctx, r.db).GetContext(ctx, &order,
		"SELECT * FROM assessment_orders WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("assessmentRepo.GetByID: %w", err)
	}
	return &order, nil
}

func (r *assessmentRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.AssessmentOrder, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("order_type", filter.Kind)
	w.eqID("client_id", filter.ClientID)
	w.search(filter.Search, "order_number", "assessment_year", "appeal_number")
	w.between("order_date", filter.From, filter.To)

	orders, total, err := selectPage[domain.AssessmentOrder](ctx, conn(ctx, r.db), "assessment_orders", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("assessmentRepo.List: %w", err)
	}
	return orders, total, nil
}

func (r *assessmentRepo) Update(ctx context.Context, order *domain.AssessmentOrder) error {
	order.UpdatedAt = time.Now().UTC()
	query := `UPDATE assessment_orders SET assessment_year = :assessment_year, order_type = :order_type,
		order_date = :order_date, order_number = :order_number,
		total_income_assessed = :total_income_assessed, tax_demanded = :tax_demanded,
		interest_charged = :interest_charged, penalty_imposed = :penalty_imposed,
		appeal_filed = :appeal_filed, appeal_date = :appeal_date, appeal_number = :appeal_number,
		status = :status, remarks = :remarks, updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, order)
	if err != nil {
		return fmt.Errorf("assessmentRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *assessmentRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM assessment_orders WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("assessmentRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
