package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxdesk/internal/aggregate"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// FeeInput is the DTO for creating or editing an outstanding fee.
type FeeInput struct {
	ClientID      uuid.UUID       `json:"client_id" validate:"required"`
	ServiceType   string          `json:"service_type" validate:"required,max=100"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	DueDate       string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	InvoiceNumber string          `json:"invoice_number" validate:"omitempty,max=50"`
	Notes         string          `json:"notes"`
}

// FeeReport summarizes the fee book.
type FeeReport struct {
	PendingTotal decimal.Decimal         `json:"pending_total"`
	PendingCount int                     `json:"pending_count"`
	PaidTotal    decimal.Decimal         `json:"paid_total"`
	OverdueCount int                     `json:"overdue_count"`
	OverdueTotal decimal.Decimal         `json:"overdue_total"`
	Fees         []domain.OutstandingFee `json:"fees"`
}

// FeeService defines the outstanding fee contract.
type FeeService interface {
	Create(ctx context.Context, actor domain.Actor, input FeeInput) (*domain.OutstandingFee, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.OutstandingFee, int, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input FeeInput) (*domain.OutstandingFee, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	MarkPaid(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error)
	Reopen(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error)
	// Report covers every fee matching filter; paging fields are ignored.
	Report(ctx context.Context, actor domain.Actor, filter domain.ListFilter) (*FeeReport, error)
}

type feeService struct {
	repo    port.FeeRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	now     Clock
	log     *zap.Logger
}

// NewFeeService creates a new FeeService implementation.
func NewFeeService(
	repo port.FeeRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) FeeService {
	return &feeService{repo: repo, clients: clients, tx: tx, valid: valid, now: clockOrNow(now), log: log}
}

// InvoiceNumber builds "<SERVICE>-YYYYMMDDHHMMSS" from the service type's
// leading word, uppercased.
func InvoiceNumber(serviceType string, at time.Time) string {
	prefix := "GEN"
	if f := strings.Fields(serviceType); len(f) > 0 {
		prefix = strings.ToUpper(unsafeNameChars.ReplaceAllString(f[0], ""))
		if prefix == "" {
			prefix = "GEN"
		}
	}
	if len(prefix) > 20 {
		prefix = prefix[:20]
	}
	return prefix + "-" + at.Format("20060102150405")
}

func (s *feeService) Create(ctx context.Context, actor domain.Actor, input FeeInput) (*domain.OutstandingFee, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	now := s.now()
	fee := &domain.OutstandingFee{
		TenantID:      actor.TenantID,
		ClientID:      input.ClientID,
		ServiceType:   strings.TrimSpace(input.ServiceType),
		Amount:        input.Amount.Round(2),
		DueDate:       mustDate(input.DueDate),
		Status:        domain.FeeStatusPending,
		InvoiceNumber: strings.TrimSpace(input.InvoiceNumber),
		Notes:         input.Notes,
		CreatedBy:     actor.UserID,
		UpdatedBy:     actor.UserID,
	}
	if fee.InvoiceNumber == "" {
		fee.InvoiceNumber = InvoiceNumber(fee.ServiceType, now)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, fee)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("fee created",
		zap.String("fee_id", fee.ID.String()),
		zap.String("invoice_number", fee.InvoiceNumber))
	fee.RefreshOverdue(now)
	return fee, nil
}

func (s *feeService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error) {
	fee, err := s.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	fee.RefreshOverdue(s.now())
	return fee, nil
}

func (s *feeService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.OutstandingFee, int, error) {
	fees, total, err := s.repo.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	today := s.now()
	for i := range fees {
		fees[i].RefreshOverdue(today)
	}
	return fees, total, nil
}

// Update edits the fee's details. The invoice number and the client are fixed
// once issued.
func (s *feeService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input FeeInput) (*domain.OutstandingFee, error) {
	var fee *domain.OutstandingFee
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		fee, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		input.ClientID = fee.ClientID
		if err := s.valid.Struct(input); err != nil {
			return err
		}
		fee.ServiceType = strings.TrimSpace(input.ServiceType)
		fee.Amount = input.Amount.Round(2)
		fee.DueDate = mustDate(input.DueDate)
		fee.Notes = input.Notes
		fee.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, fee)
	})
	if err != nil {
		return nil, err
	}
	fee.RefreshOverdue(s.now())
	return fee, nil
}

func (s *feeService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

func (s *feeService) MarkPaid(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error) {
	return s.transition(ctx, actor, id, domain.FeeStatusPaid)
}

func (s *feeService) Reopen(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OutstandingFee, error) {
	return s.transition(ctx, actor, id, domain.FeeStatusPending)
}

func (s *feeService) transition(ctx context.Context, actor domain.Actor, id uuid.UUID, to domain.FeeStatus) (*domain.OutstandingFee, error) {
	now := s.now()
	var fee *domain.OutstandingFee
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		fee, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if err := domain.FeeTransitions.Check(fee.Status, to); err != nil {
			return err
		}
		fee.Status = to
		if to == domain.FeeStatusPaid {
			paid := now.UTC()
			fee.PaidAt = &paid
		} else {
			fee.PaidAt = nil
		}
		fee.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, fee)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("fee status changed",
		zap.String("fee_id", id.String()),
		zap.String("status", string(to)))
	fee.RefreshOverdue(now)
	return fee, nil
}

func (s *feeService) Report(ctx context.Context, actor domain.Actor, filter domain.ListFilter) (*FeeReport, error) {
	filter.Offset, filter.Limit = 0, 0
	fees, _, err := s.List(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	today := s.now()
	return &FeeReport{
		PendingTotal: aggregate.PendingFeeTotal(fees),
		PendingCount: aggregate.Count(fees, func(f domain.OutstandingFee) bool { return f.Status == domain.FeeStatusPending }),
		PaidTotal:    aggregate.PaidFeeTotal(fees, nil, nil),
		OverdueCount: aggregate.OverdueFeeCount(fees, today),
		OverdueTotal: aggregate.OverdueFeeTotal(fees, today),
		Fees:         fees,
	}, nil
}
