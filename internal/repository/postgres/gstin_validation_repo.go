package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

type gstinValidationRepo struct {
	db *sqlx.DB
}

// NewGSTINValidationRepo creates a new PostgreSQL-backed GSTINValidationRepository.
func NewGSTINValidationRepo(db *sqlx.DB) port.GSTINValidationRepository {
	return &gstinValidationRepo{db: db}
}

func (r *gstinValidationRepo) Upsert(ctx context.Context, v *domain.GSTINValidation) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	query := `INSERT INTO gstin_validations (id, tenant_id, gstin, is_valid, state_code, state_name,
		embedded_pan, message, check_count, last_checked_by, last_validated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $10, $10)
		ON CONFLICT (tenant_id, gstin) DO UPDATE SET
			is_valid = EXCLUDED.is_valid,
			state_code = EXCLUDED.state_code,
			state_name = EXCLUDED.state_name,
			embedded_pan = EXCLUDED.embedded_pan,
			message = EXCLUDED.message,
			check_count = gstin_validations.check_count + 1,
			last_checked_by = EXCLUDED.last_checked_by,
			last_validated = EXCLUDED.last_validated
		RETURNING *`

	err := conn(ctx, r.db).GetContext(ctx, v, query,
		v.ID, v.TenantID, v.GSTIN, v.IsValid, v.StateCode, v.StateName,
		v.EmbeddedPAN, v.Message, v.LastCheckedBy, v.LastValidated)
	if err != nil {
		return fmt.Errorf("gstinValidationRepo.Upsert: %w", err)
	}
	return nil
}

func (r *gstinValidationRepo) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.GSTINValidation, error) {
	validations := []domain.GSTINValidation{}
	err := conn(ctx, r.db).SelectContext(ctx, &validations,
		`SELECT * FROM gstin_validations WHERE tenant_id = $1
		ORDER BY last_validated DESC LIMIT $2`, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("gstinValidationRepo.ListRecent: %w", err)
	}
	return validations, nil
}
