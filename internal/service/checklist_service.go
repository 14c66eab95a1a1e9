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

// ChecklistInput is the DTO for creating a document checklist.
type ChecklistInput struct {
	ClientID      uuid.UUID `json:"client_id" validate:"required"`
	Title         string    `json:"title" validate:"required,max=200"`
	FinancialYear string    `json:"financial_year" validate:"omitempty,max=10"`
	DueDate       string    `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Items         []string  `json:"items" validate:"dive,required,max=200"`
}

// ChecklistService defines the document checklist contract.
type ChecklistService interface {
	Create(ctx context.Context, actor domain.Actor, input ChecklistInput) (*domain.DocumentChecklist, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.DocumentChecklist, int, error)
	MarkItem(ctx context.Context, actor domain.Actor, id, itemID uuid.UUID, received bool) (*domain.DocumentChecklist, error)
	Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error)
	Reopen(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type checklistService struct {
	repo    port.ChecklistRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	now     Clock
	log     *zap.Logger
}

// NewChecklistService creates a new ChecklistService implementation.
func NewChecklistService(
	repo port.ChecklistRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) ChecklistService {
	return &checklistService{repo: repo, clients: clients, tx: tx, valid: valid, now: clockOrNow(now), log: log}
}

func (s *checklistService) Create(ctx context.Context, actor domain.Actor, input ChecklistInput) (*domain.DocumentChecklist, error) {
	for i := range input.Items {
		input.Items[i] = strings.TrimSpace(input.Items[i])
	}
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	checklist := &domain.DocumentChecklist{
		TenantID:      actor.TenantID,
		ClientID:      input.ClientID,
		Title:         strings.TrimSpace(input.Title),
		FinancialYear: input.FinancialYear,
		DueDate:       mustDate(input.DueDate),
		Status:        domain.ChecklistStatusOpen,
		CreatedBy:     actor.UserID,
		UpdatedBy:     actor.UserID,
		Items:         make([]domain.ChecklistItem, 0, len(input.Items)),
	}
	if checklist.FinancialYear == "" {
		checklist.FinancialYear = domain.FinancialYear(s.now())
	}
	for _, name := range input.Items {
		checklist.Items = append(checklist.Items, domain.ChecklistItem{Name: name})
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, checklist)
	})
	if err != nil {
		return nil, err
	}
	checklist.RefreshProgress()
	return checklist, nil
}

func (s *checklistService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error) {
	return s.repo.GetByID(ctx, actor.TenantID, id)
}

func (s *checklistService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.DocumentChecklist, int, error) {
	return s.repo.List(ctx, actor.TenantID, filter)
}

func (s *checklistService) MarkItem(ctx context.Context, actor domain.Actor, id, itemID uuid.UUID, received bool) (*domain.DocumentChecklist, error) {
	var checklist *domain.DocumentChecklist
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Loading first scopes the item to the caller's tenant.
		if _, err := s.repo.GetByID(ctx, actor.TenantID, id); err != nil {
			return err
		}
		if err := s.repo.SetItemReceived(ctx, id, itemID, received); err != nil {
			return err
		}
		var err error
		checklist, err = s.repo.GetByID(ctx, actor.TenantID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return checklist, nil
}

func (s *checklistService) Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error) {
	return s.transition(ctx, actor, id, domain.ChecklistStatusCompleted)
}

func (s *checklistService) Reopen(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DocumentChecklist, error) {
	return s.transition(ctx, actor, id, domain.ChecklistStatusOpen)
}

func (s *checklistService) transition(ctx context.Context, actor domain.Actor, id uuid.UUID, to domain.ChecklistStatus) (*domain.DocumentChecklist, error) {
	var checklist *domain.DocumentChecklist
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		checklist, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if err := domain.ChecklistTransitions.Check(checklist.Status, to); err != nil {
			return err
		}
		checklist.Status = to
		checklist.UpdatedBy = actor.UserID
		return s.repo.UpdateStatus(ctx, checklist)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("checklist status changed",
		zap.String("checklist_id", id.String()),
		zap.String("status", string(to)))
	return checklist, nil
}

func (s *checklistService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}
