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

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	doc.CreatedAt = time.Now().UTC()

	query := `INSERT INTO documents (
		id, tenant_id, client_id, title, document_type, folder,
		original_name, stored_name, s3_bucket, s3_key, content_type, file_size,
		notes, uploaded_by, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10, $11, $12,
		$13, $14, $15
	)`

	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		doc.ID, doc.TenantID, doc.ClientID, doc.Title, doc.DocumentType, doc.Folder,
		doc.OriginalName, doc.StoredName, doc.S3Bucket, doc.S3Key, doc.ContentType, doc.FileSize,
		doc.Notes, doc.UploadedBy, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := conn(ctx, r.db).GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE id = $1 AND tenant_id = $2", docID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Document, int, error) {
	w := tenantWhere(tenantID)
	w.eqID("client_id", filter.ClientID)
	w.eq("document_type", filter.Kind)
	w.eq("folder", filter.Status)
	w.search(filter.Search, "title", "original_name", "notes")
	w.between("created_at", filter.From, filter.To)

	docs, total, err := selectPage[domain.Document](ctx, conn(ctx, r.db), "documents", w,
		"created_at DESC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) Delete(ctx context.Context, tenantID, docID uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM documents WHERE id = $1 AND tenant_id = $2", docID, tenantID)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
