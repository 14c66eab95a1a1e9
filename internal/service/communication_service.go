package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/msgtemplate"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

var errSMSUnavailable = errors.New("sms delivery is not configured")

// TemplateInput is the DTO for creating or editing a message template.
type TemplateInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Channel  string `json:"channel" validate:"required,oneof=email sms"`
	Subject  string `json:"subject" validate:"omitempty,max=200"`
	Content  string `json:"content" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

// SendInput is the DTO for sending a message to a client. Either TemplateID
// or Body must be given; FeeID supplies the fee tokens.
type SendInput struct {
	ClientID   uuid.UUID  `json:"client_id" validate:"required"`
	TemplateID *uuid.UUID `json:"template_id"`
	FeeID      *uuid.UUID `json:"fee_id"`
	Channel    string     `json:"channel" validate:"omitempty,oneof=email sms"`
	Subject    string     `json:"subject" validate:"omitempty,max=200"`
	Body       string     `json:"body" validate:"required_without=TemplateID"`
}

// CommunicationService defines the message template and outbound message contract.
type CommunicationService interface {
	CreateTemplate(ctx context.Context, actor domain.Actor, input TemplateInput) (*domain.MessageTemplate, error)
	GetTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.MessageTemplate, error)
	ListTemplates(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.MessageTemplate, int, error)
	UpdateTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID, input TemplateInput) (*domain.MessageTemplate, error)
	DeleteTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID) error

	// Send renders and dispatches a message and records the outcome. A delivery
	// failure is recorded on the returned log rather than returned as an error.
	Send(ctx context.Context, actor domain.Actor, input SendInput) (*domain.CommunicationLog, error)
	// Retry re-dispatches a Failed message.
	Retry(ctx context.Context, actor domain.Actor, logID uuid.UUID) (*domain.CommunicationLog, error)
	ListLogs(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.CommunicationLog, int, error)
}

type communicationService struct {
	templates port.TemplateRepository
	logs      port.CommunicationLogRepository
	clients   port.ClientRepository
	fees      port.FeeRepository
	sender    port.EmailSender
	tx        port.Transactor
	valid     *validator.Validator
	now       Clock
	log       *zap.Logger
}

// NewCommunicationService creates a new CommunicationService implementation.
func NewCommunicationService(
	templates port.TemplateRepository,
	logs port.CommunicationLogRepository,
	clients port.ClientRepository,
	fees port.FeeRepository,
	sender port.EmailSender,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) CommunicationService {
	return &communicationService{
		templates: templates,
		logs:      logs,
		clients:   clients,
		fees:      fees,
		sender:    sender,
		tx:        tx,
		valid:     valid,
		now:       clockOrNow(now),
		log:       log,
	}
}

func (s *communicationService) CreateTemplate(ctx context.Context, actor domain.Actor, input TemplateInput) (*domain.MessageTemplate, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	tmpl := &domain.MessageTemplate{
		TenantID:  actor.TenantID,
		Name:      strings.TrimSpace(input.Name),
		Channel:   domain.Channel(input.Channel),
		Subject:   input.Subject,
		Content:   input.Content,
		IsActive:  input.IsActive == nil || *input.IsActive,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.templates.Create(ctx, tmpl)
	}); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *communicationService) GetTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.MessageTemplate, error) {
	return s.templates.GetByID(ctx, actor.TenantID, id)
}

func (s *communicationService) ListTemplates(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.MessageTemplate, int, error) {
	return s.templates.List(ctx, actor.TenantID, filter)
}

func (s *communicationService) UpdateTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID, input TemplateInput) (*domain.MessageTemplate, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	tmpl, err := s.templates.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	tmpl.Name = strings.TrimSpace(input.Name)
	tmpl.Channel = domain.Channel(input.Channel)
	tmpl.Subject = input.Subject
	tmpl.Content = input.Content
	if input.IsActive != nil {
		tmpl.IsActive = *input.IsActive
	}
	tmpl.UpdatedBy = actor.UserID
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.templates.Update(ctx, tmpl)
	}); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *communicationService) DeleteTemplate(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.templates.Delete(ctx, actor.TenantID, id)
	})
}

func (s *communicationService) Send(ctx context.Context, actor domain.Actor, input SendInput) (*domain.CommunicationLog, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	client, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID)
	if err != nil {
		return nil, err
	}
	var fee *domain.OutstandingFee
	if input.FeeID != nil {
		fee, err = s.fees.GetByID(ctx, actor.TenantID, *input.FeeID)
		if err != nil {
			return nil, err
		}
		if fee.ClientID != client.ID {
			return nil, domain.NewValidationError("fee_id", "fee belongs to a different client")
		}
	}

	channel := domain.Channel(input.Channel)
	subject, body := input.Subject, input.Body
	if input.TemplateID != nil {
		tmpl, err := s.templates.GetByID(ctx, actor.TenantID, *input.TemplateID)
		if err != nil {
			return nil, err
		}
		if !tmpl.IsActive {
			return nil, domain.ErrTemplateInactive
		}
		channel = tmpl.Channel
		if subject == "" {
			subject = tmpl.Subject
		}
		if body == "" {
			body = tmpl.Content
		}
	}
	if channel == "" {
		channel = domain.ChannelEmail
	}

	recipient := client.Email
	if channel == domain.ChannelSMS {
		recipient = client.Phone
	}
	if recipient == "" {
		return nil, domain.ErrNoRecipient
	}

	values := msgtemplate.ValuesFor(client, fee)
	entry := &domain.CommunicationLog{
		TenantID:   actor.TenantID,
		ClientID:   &client.ID,
		TemplateID: input.TemplateID,
		Channel:    channel,
		Recipient:  recipient,
		Subject:    msgtemplate.Render(subject, values),
		Body:       msgtemplate.Render(body, values),
		Status:     domain.CommunicationPending,
		CreatedBy:  actor.UserID,
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.logs.Create(ctx, entry)
	}); err != nil {
		return nil, err
	}
	return s.dispatch(ctx, client.Name, entry)
}

// dispatch delivers a Pending log entry and records Sent or Failed.
func (s *communicationService) dispatch(ctx context.Context, name string, entry *domain.CommunicationLog) (*domain.CommunicationLog, error) {
	var sendErr error
	if entry.Channel == domain.ChannelEmail {
		sendErr = s.sender.Send(ctx, port.EmailMessage{
			ToEmail:  entry.Recipient,
			ToName:   name,
			Subject:  entry.Subject,
			TextBody: entry.Body,
		})
	} else {
		sendErr = errSMSUnavailable
	}

	to := domain.CommunicationSent
	entry.Error = ""
	if sendErr != nil {
		to = domain.CommunicationFailed
		entry.Error = sendErr.Error()
		s.log.Warn("message delivery failed",
			zap.String("log_id", entry.ID.String()),
			zap.String("channel", string(entry.Channel)),
			zap.Error(sendErr))
	} else {
		sentAt := s.now().UTC()
		entry.SentAt = &sentAt
	}
	if err := domain.CommunicationTransitions.Check(entry.Status, to); err != nil {
		return nil, err
	}
	entry.Status = to
	if err := s.updateLog(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// updateLog persists a status change in its own transaction. Delivery itself
// runs between transactions so a Pending row exists before the provider is called.
func (s *communicationService) updateLog(ctx context.Context, entry *domain.CommunicationLog) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.logs.UpdateStatus(ctx, entry)
	})
}

func (s *communicationService) Retry(ctx context.Context, actor domain.Actor, logID uuid.UUID) (*domain.CommunicationLog, error) {
	entry, err := s.logs.GetByID(ctx, actor.TenantID, logID)
	if err != nil {
		return nil, err
	}
	if err := domain.CommunicationTransitions.Check(entry.Status, domain.CommunicationPending); err != nil {
		return nil, err
	}
	entry.Status = domain.CommunicationPending
	if err := s.updateLog(ctx, entry); err != nil {
		return nil, err
	}

	name := ""
	if entry.ClientID != nil {
		if client, err := s.clients.GetByID(ctx, actor.TenantID, *entry.ClientID); err == nil {
			name = client.Name
		}
	}
	return s.dispatch(ctx, name, entry)
}

func (s *communicationService) ListLogs(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.CommunicationLog, int, error) {
	return s.logs.List(ctx, actor.TenantID, filter)
}
