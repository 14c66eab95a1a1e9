package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taxdesk/internal/aggregate"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// FollowUpWindowDays is how far ahead follow-up reminders are surfaced.
const FollowUpWindowDays = 7

// ReminderInput is the DTO for creating or editing a reminder.
type ReminderInput struct {
	ClientID     *uuid.UUID `json:"client_id"`
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description"`
	ReminderDate string     `json:"reminder_date" validate:"required,datetime=2006-01-02"`
	ReminderType string     `json:"reminder_type" validate:"required,oneof='Birthday' 'Due Date' 'Follow-up' 'Meeting' 'Other'"`
}

// ReminderService defines the reminder contract.
type ReminderService interface {
	Create(ctx context.Context, actor domain.Actor, input ReminderInput) (*domain.Reminder, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Reminder, int, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input ReminderInput) (*domain.Reminder, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error)
	Cancel(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error)
	// Upcoming lists active reminders dated from today through today+days.
	Upcoming(ctx context.Context, actor domain.Actor, days int) ([]domain.Reminder, error)
	// FollowUps lists active follow-ups dated on or before a week from today,
	// including those already past.
	FollowUps(ctx context.Context, actor domain.Actor) ([]domain.Reminder, error)
	OverdueCount(ctx context.Context, actor domain.Actor) (int, error)
}

type reminderService struct {
	repo    port.ReminderRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	now     Clock
	log     *zap.Logger
}

// NewReminderService creates a new ReminderService implementation.
func NewReminderService(
	repo port.ReminderRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) ReminderService {
	return &reminderService{repo: repo, clients: clients, tx: tx, valid: valid, now: clockOrNow(now), log: log}
}

func (in *ReminderInput) apply(r *domain.Reminder) {
	r.ClientID = in.ClientID
	r.Title = in.Title
	r.Description = in.Description
	if d := mustDate(in.ReminderDate); d != nil {
		r.ReminderDate = *d
	}
	r.ReminderType = domain.ReminderType(in.ReminderType)
}

func (s *reminderService) checkClient(ctx context.Context, actor domain.Actor, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	_, err := s.clients.GetByID(ctx, actor.TenantID, *id)
	return err
}

func (s *reminderService) Create(ctx context.Context, actor domain.Actor, input ReminderInput) (*domain.Reminder, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	reminder := &domain.Reminder{
		TenantID:  actor.TenantID,
		Status:    domain.ReminderStatusActive,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(reminder)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkClient(ctx, actor, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, reminder)
	})
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *reminderService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error) {
	return s.repo.GetByID(ctx, actor.TenantID, id)
}

func (s *reminderService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Reminder, int, error) {
	return s.repo.List(ctx, actor.TenantID, filter)
}

func (s *reminderService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input ReminderInput) (*domain.Reminder, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	var reminder *domain.Reminder
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		reminder, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if err := s.checkClient(ctx, actor, input.ClientID); err != nil {
			return err
		}
		input.apply(reminder)
		reminder.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, reminder)
	})
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *reminderService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

func (s *reminderService) Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error) {
	return s.transition(ctx, actor, id, domain.ReminderStatusCompleted)
}

func (s *reminderService) Cancel(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Reminder, error) {
	return s.transition(ctx, actor, id, domain.ReminderStatusCancelled)
}

func (s *reminderService) transition(ctx context.Context, actor domain.Actor, id uuid.UUID, to domain.ReminderStatus) (*domain.Reminder, error) {
	var reminder *domain.Reminder
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		reminder, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if err := domain.ReminderTransitions.Check(reminder.Status, to); err != nil {
			return err
		}
		reminder.Status = to
		reminder.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, reminder)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("reminder status changed",
		zap.String("reminder_id", id.String()),
		zap.String("status", string(to)))
	return reminder, nil
}

func (s *reminderService) window(ctx context.Context, actor domain.Actor, kind domain.ReminderType, from *time.Time, days int) ([]domain.Reminder, error) {
	to := domain.StartOfDay(s.now()).AddDate(0, 0, days)
	reminders, _, err := s.repo.List(ctx, actor.TenantID, domain.ListFilter{
		Status: string(domain.ReminderStatusActive),
		Kind:   string(kind),
		From:   from,
		To:     &to,
	})
	return reminders, err
}

func (s *reminderService) Upcoming(ctx context.Context, actor domain.Actor, days int) ([]domain.Reminder, error) {
	if days <= 0 {
		days = FollowUpWindowDays
	}
	today := domain.StartOfDay(s.now())
	return s.window(ctx, actor, "", &today, days)
}

func (s *reminderService) FollowUps(ctx context.Context, actor domain.Actor) ([]domain.Reminder, error) {
	return s.window(ctx, actor, domain.ReminderTypeFollowUp, nil, FollowUpWindowDays)
}

func (s *reminderService) OverdueCount(ctx context.Context, actor domain.Actor) (int, error) {
	reminders, _, err := s.repo.List(ctx, actor.TenantID, domain.ListFilter{
		Status: string(domain.ReminderStatusActive),
	})
	if err != nil {
		return 0, err
	}
	return aggregate.OverdueReminderCount(reminders, s.now()), nil
}
