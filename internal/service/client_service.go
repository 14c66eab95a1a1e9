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

// ClientInput is the DTO for creating or replacing a client.
type ClientInput struct {
	Name              string `json:"name" validate:"required,max=200"`
	PAN               string `json:"pan" validate:"omitempty,pan"`
	GSTIN             string `json:"gstin" validate:"omitempty,gstin"`
	Email             string `json:"email" validate:"omitempty,email,max=120"`
	Phone             string `json:"phone" validate:"omitempty,phone_in"`
	Address           string `json:"address"`
	DateOfBirth       string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	IncorporationDate string `json:"incorporation_date" validate:"omitempty,datetime=2006-01-02"`
	ClientType        string `json:"client_type" validate:"required,oneof=Individual Company Partnership LLP Trust Society"`
	Notes             string `json:"notes"`
}

func (in *ClientInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.PAN = strings.TrimSpace(in.PAN)
	in.GSTIN = strings.TrimSpace(in.GSTIN)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in *ClientInput) apply(c *domain.Client) {
	c.Name = in.Name
	c.PAN = optionalString(in.PAN)
	c.GSTIN = optionalString(in.GSTIN)
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.DateOfBirth = mustDate(in.DateOfBirth)
	c.IncorporationDate = mustDate(in.IncorporationDate)
	c.ClientType = domain.ClientType(in.ClientType)
	c.Notes = in.Notes
}

// ClientService defines the client management contract.
type ClientService interface {
	Create(ctx context.Context, actor domain.Actor, input ClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Client, int, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	// Search returns up to ten clients matching term, for autocomplete.
	Search(ctx context.Context, actor domain.Actor, term string) ([]domain.Client, error)
	SetStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.ClientStatus) (*domain.Client, error)
}

type clientService struct {
	repo  port.ClientRepository
	fees  port.FeeRepository
	tx    port.Transactor
	valid *validator.Validator
	log   *zap.Logger
}

// NewClientService creates a new ClientService implementation.
func NewClientService(
	repo port.ClientRepository,
	fees port.FeeRepository,
	tx port.Transactor,
	valid *validator.Validator,
	log *zap.Logger,
) ClientService {
	return &clientService{repo: repo, fees: fees, tx: tx, valid: valid, log: log}
}

// decorate fills the display-only state fields from the GSTIN.
func decorate(c *domain.Client) {
	c.StateCode, c.StateName = "", ""
	if c.GSTIN == nil {
		return
	}
	c.StateCode = validator.StateCode(*c.GSTIN)
	c.StateName = validator.StateName(c.StateCode)
}

func (s *clientService) Create(ctx context.Context, actor domain.Actor, input ClientInput) (*domain.Client, error) {
	input.normalize()
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	client := &domain.Client{
		TenantID:  actor.TenantID,
		Status:    domain.ClientStatusActive,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(client)

	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, client)
	}); err != nil {
		return nil, err
	}
	s.log.Info("client created",
		zap.String("tenant_id", actor.TenantID.String()),
		zap.String("client_id", client.ID.String()))
	decorate(client)
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Client, error) {
	client, err := s.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	decorate(client)
	return client, nil
}

func (s *clientService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Client, int, error) {
	clients, total, err := s.repo.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range clients {
		decorate(&clients[i])
	}
	return clients, total, nil
}

func (s *clientService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input ClientInput) (*domain.Client, error) {
	input.normalize()
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	var client *domain.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		client, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		input.apply(client)
		client.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	decorate(client)
	return client, nil
}

// Delete removes a client. It is refused while any Pending fee exists for
// the client; the check and the delete share one transaction.
func (s *clientService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, actor.TenantID, id); err != nil {
			return err
		}
		open, err := s.fees.CountPendingByClient(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if open > 0 {
			return domain.ErrClientHasOpenFees
		}
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("client deleted",
		zap.String("tenant_id", actor.TenantID.String()),
		zap.String("client_id", id.String()))
	return nil
}

func (s *clientService) Search(ctx context.Context, actor domain.Actor, term string) ([]domain.Client, error) {
	if strings.TrimSpace(term) == "" {
		return []domain.Client{}, nil
	}
	clients, _, err := s.List(ctx, actor, domain.ListFilter{Search: term, Limit: 10})
	return clients, err
}

func (s *clientService) SetStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.ClientStatus) (*domain.Client, error) {
	var client *domain.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		client, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if err := domain.ClientTransitions.Check(client.Status, status); err != nil {
			return err
		}
		client.Status = status
		client.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	decorate(client)
	return client, nil
}
