package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// ClientNoteInput is the DTO for creating or editing a client note.
// Category defaults to General.
type ClientNoteInput struct {
	ClientID uuid.UUID `json:"client_id" validate:"required"`
	Title    string    `json:"title" validate:"required,max=200"`
	Content  string    `json:"content" validate:"required"`
	Category string    `json:"category" validate:"omitempty,oneof=General Call Meeting Follow-up"`
	Pinned   bool      `json:"pinned"`
}

// ClientNoteService defines the client note contract.
type ClientNoteService interface {
	Create(ctx context.Context, actor domain.Actor, input ClientNoteInput) (*domain.ClientNote, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ClientNote, error)
	// List returns pinned notes first, newest first within each group.
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ClientNote, int, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input ClientNoteInput) (*domain.ClientNote, error)
	SetPinned(ctx context.Context, actor domain.Actor, id uuid.UUID, pinned bool) (*domain.ClientNote, error)
	// Delete is allowed to the note's author and to admins.
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type clientNoteService struct {
	repo    port.ClientNoteRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	log     *zap.Logger
}

// NewClientNoteService creates a new ClientNoteService implementation.
func NewClientNoteService(
	repo port.ClientNoteRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	log *zap.Logger,
) ClientNoteService {
	return &clientNoteService{repo: repo, clients: clients, tx: tx, valid: valid, log: log}
}

func (in *ClientNoteInput) apply(n *domain.ClientNote) {
	n.Title = strings.TrimSpace(in.Title)
	n.Content = in.Content
	n.Category = domain.NoteCategory(in.Category)
	if n.Category == "" {
		n.Category = domain.NoteCategoryGeneral
	}
	n.Pinned = in.Pinned
}

func (s *clientNoteService) Create(ctx context.Context, actor domain.Actor, input ClientNoteInput) (*domain.ClientNote, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	note := &domain.ClientNote{
		TenantID:  actor.TenantID,
		ClientID:  input.ClientID,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(note)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, note)
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *clientNoteService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ClientNote, error) {
	return s.repo.GetByID(ctx, actor.TenantID, id)
}

func (s *clientNoteService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ClientNote, int, error) {
	return s.repo.List(ctx, actor.TenantID, filter)
}

func (s *clientNoteService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input ClientNoteInput) (*domain.ClientNote, error) {
	var note *domain.ClientNote
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		note, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		input.ClientID = note.ClientID
		if err := s.valid.Struct(input); err != nil {
			return err
		}
		input.apply(note)
		note.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, note)
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *clientNoteService) SetPinned(ctx context.Context, actor domain.Actor, id uuid.UUID, pinned bool) (*domain.ClientNote, error) {
	var note *domain.ClientNote
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		note, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		note.Pinned = pinned
		note.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, note)
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *clientNoteService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		note, err := s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if note.CreatedBy != actor.UserID && !actor.IsAdmin() {
			return domain.ErrForbidden
		}
		if err := s.repo.Delete(ctx, actor.TenantID, id); err != nil {
			return err
		}
		s.log.Info("client note deleted",
			zap.String("note_id", id.String()),
			zap.String("deleted_by", actor.UserID.String()))
		return nil
	})
}
