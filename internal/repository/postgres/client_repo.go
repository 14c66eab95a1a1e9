package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

const (
	clientPANIndex   = "idx_clients_tenant_pan"
	clientGSTINIndex = "idx_clients_tenant_gstin"
)

// writeErr maps violations of the PAN and GSTIN indexes to their sentinels.
// Any other failure, including an unknown unique index, is wrapped as is.
func (r *clientRepo) writeErr(op string, err error) error {
	if name, ok := uniqueViolation(err); ok {
		switch {
		case strings.Contains(name, clientGSTINIndex):
			return domain.ErrDuplicateGSTIN
		case strings.Contains(name, clientPANIndex):
			return domain.ErrDuplicatePAN
		}
	}
	return fmt.Errorf("clientRepo.%s: %w", op, err)
}

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	query := `INSERT INTO clients (id, tenant_id, name, pan, gstin, email, phone, address,
		date_of_birth, incorporation_date, client_type, status, notes,
		created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :name, :pan, :gstin, :email, :phone, :address,
		:date_of_birth, :incorporation_date, :client_type, :status, :notes,
		:created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, client); err != nil {
		return r.writeErr("Create", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := conn(ctx, r.db).GetContext(ctx, &client,
		"SELECT * FROM clients WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByID: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Client, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("client_type", filter.Kind)
	w.search(filter.Search, "name", "pan", "gstin", "email", "phone")
	w.between("created_at", filter.From, filter.To)

	clients, total, err := selectPage[domain.Client](ctx, conn(ctx, r.db), "clients", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.List: %w", err)
	}
	return clients, total, nil
}

func (r *clientRepo) Update(ctx context.Context, client *domain.Client) error {
	client.UpdatedAt = time.Now().UTC()
	query := `UPDATE clients SET name = :name, pan = :pan, gstin = :gstin, email = :email,
		phone = :phone, address = :address, date_of_birth = :date_of_birth,
		incorporation_date = :incorporation_date, client_type = :client_type,
		status = :status, notes = :notes, updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, client)
	if err != nil {
		return r.writeErr("Update", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *clientRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM clients WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("clientRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
