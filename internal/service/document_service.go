package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taxdesk/internal/config"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// DocumentUploadInput is the DTO for document uploads. Body is read once.
type DocumentUploadInput struct {
	ClientID     *uuid.UUID
	Title        string `validate:"omitempty,max=200"`
	DocumentType string `validate:"omitempty,max=50"`
	Folder       string `validate:"omitempty,max=50,alphanum"`
	Notes        string
	FileName     string `validate:"required"`
	Size         int64
	Body         io.Reader
}

// DocumentService defines the document storage contract.
type DocumentService interface {
	Upload(ctx context.Context, actor domain.Actor, input DocumentUploadInput) (*domain.Document, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Document, int, error)
	GetDownloadURL(ctx context.Context, actor domain.Actor, id uuid.UUID) (string, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type documentService struct {
	repo    port.DocumentRepository
	clients port.ClientRepository
	storage port.ObjectStorage
	tx      port.Transactor
	cfg     *config.S3Config
	valid   *validator.Validator
	log     *zap.Logger
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	repo port.DocumentRepository,
	clients port.ClientRepository,
	storage port.ObjectStorage,
	tx port.Transactor,
	cfg *config.S3Config,
	valid *validator.Validator,
	log *zap.Logger,
) DocumentService {
	return &documentService{
		repo:    repo,
		clients: clients,
		storage: storage,
		tx:      tx,
		cfg:     cfg,
		valid:   valid,
		log:     log,
	}
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// StoredName returns the name a file is kept under: the sanitized base name,
// an underscore, suffix and the lowercased extension.
func StoredName(original, suffix string) (string, string, error) {
	base := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return "", "", domain.ErrUnsupportedFileType
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.Trim(unsafeNameChars.ReplaceAllString(stem, "_"), "._")
	if stem == "" {
		stem = "document"
	}
	return fmt.Sprintf("%s_%s.%s", stem, suffix, ext), ext, nil
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (s *documentService) Upload(ctx context.Context, actor domain.Actor, input DocumentUploadInput) (*domain.Document, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	stored, ext, err := StoredName(input.FileName, randomSuffix())
	if err != nil {
		return nil, err
	}
	if input.Size > s.cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}
	if input.ClientID != nil {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, *input.ClientID); err != nil {
			return nil, err
		}
	}

	folder := strings.ToLower(input.Folder)
	key := fmt.Sprintf("tenants/%s/documents/%s", actor.TenantID, stored)
	if folder != "" {
		key = fmt.Sprintf("tenants/%s/documents/%s/%s", actor.TenantID, folder, stored)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = filepath.Base(input.FileName)
	}

	doc := &domain.Document{
		TenantID:     actor.TenantID,
		ClientID:     input.ClientID,
		Title:        title,
		DocumentType: input.DocumentType,
		Folder:       folder,
		OriginalName: filepath.Base(input.FileName),
		StoredName:   stored,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        key,
		ContentType:  domain.AllowedExtensions[ext],
		FileSize:     input.Size,
		Notes:        input.Notes,
		UploadedBy:   actor.UserID,
	}

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      doc.S3Bucket,
		Key:         doc.S3Key,
		Body:        input.Body,
		ContentType: doc.ContentType,
		Size:        doc.FileSize,
	}); err != nil {
		s.log.Error("document upload failed", zap.String("key", key), zap.Error(err))
		return nil, domain.ErrUploadFailed
	}

	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	}); err != nil {
		// The object has no row pointing at it; remove it.
		if delErr := s.storage.Delete(ctx, doc.S3Bucket, doc.S3Key); delErr != nil {
			s.log.Warn("orphaned document object", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}
	s.log.Info("document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("key", key),
		zap.Int64("size", doc.FileSize))
	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Document, error) {
	return s.repo.GetByID(ctx, actor.TenantID, id)
}

func (s *documentService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Document, int, error) {
	return s.repo.List(ctx, actor.TenantID, filter)
}

func (s *documentService) GetDownloadURL(ctx context.Context, actor domain.Actor, id uuid.UUID) (string, error) {
	doc, err := s.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, doc.S3Bucket, doc.S3Key, s.cfg.PresignExpiry)
}

// Delete removes the stored object first, then the row.
func (s *documentService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if err := s.storage.Delete(ctx, doc.S3Bucket, doc.S3Key); err != nil {
			s.log.Error("document object delete failed", zap.String("key", doc.S3Key), zap.Error(err))
			return fmt.Errorf("deleting from storage: %w", err)
		}
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}
