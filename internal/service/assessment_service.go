package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// AssessmentInput is the DTO for recording or editing an assessment order.
type AssessmentInput struct {
	ClientID            uuid.UUID       `json:"client_id" validate:"required"`
	AssessmentYear      string          `json:"assessment_year" validate:"required,year_range"`
	OrderType           string          `json:"order_type" validate:"required,oneof=Scrutiny 'Best Judgment' Ex-parte Penalty Rectification"`
	OrderDate           string          `json:"order_date" validate:"required,datetime=2006-01-02"`
	OrderNumber         string          `json:"order_number" validate:"omitempty,max=50"`
	TotalIncomeAssessed decimal.Decimal `json:"total_income_assessed" validate:"gte=0"`
	TaxDemanded         decimal.Decimal `json:"tax_demanded" validate:"gte=0"`
	InterestCharged     decimal.Decimal `json:"interest_charged" validate:"gte=0"`
	PenaltyImposed      decimal.Decimal `json:"penalty_imposed" validate:"gte=0"`
	Remarks             string          `json:"remarks"`
}

// AssessmentStatusInput is the DTO for an assessment order status change.
// The appeal fields are only read when moving to Appealed.
type AssessmentStatusInput struct {
	Status       string `json:"status" validate:"required"`
	AppealDate   string `json:"appeal_date" validate:"omitempty,datetime=2006-01-02"`
	AppealNumber string `json:"appeal_number" validate:"omitempty,max=50"`
}

// AssessmentService defines the assessment order contract. Every returned
// order carries its derived total demand.
type AssessmentService interface {
	Create(ctx context.Context, actor domain.Actor, input AssessmentInput) (*domain.AssessmentOrder, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.AssessmentOrder, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.AssessmentOrder, int, error)
	// Update edits an unsettled order. The client is fixed once recorded.
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input AssessmentInput) (*domain.AssessmentOrder, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input AssessmentStatusInput) (*domain.AssessmentOrder, error)
}

type assessmentService struct {
	repo    port.AssessmentRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	now     Clock
	log     *zap.Logger
}

// NewAssessmentService creates a new AssessmentService implementation.
func NewAssessmentService(
	repo port.AssessmentRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) AssessmentService {
	return &assessmentService{repo: repo, clients: clients, tx: tx, valid: valid, now: clockOrNow(now), log: log}
}

func (in *AssessmentInput) apply(o *domain.AssessmentOrder) {
	o.AssessmentYear = in.AssessmentYear
	o.OrderType = domain.AssessmentOrderType(in.OrderType)
	if d := mustDate(in.OrderDate); d != nil {
		o.OrderDate = *d
	}
	o.OrderNumber = strings.TrimSpace(in.OrderNumber)
	o.TotalIncomeAssessed = in.TotalIncomeAssessed.Round(2)
	o.TaxDemanded = in.TaxDemanded.Round(2)
	o.InterestCharged = in.InterestCharged.Round(2)
	o.PenaltyImposed = in.PenaltyImposed.Round(2)
	o.Remarks = in.Remarks
}

func (s *assessmentService) Create(ctx context.Context, actor domain.Actor, input AssessmentInput) (*domain.AssessmentOrder, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	order := &domain.AssessmentOrder{
		TenantID:  actor.TenantID,
		ClientID:  input.ClientID,
		Status:    domain.AssessmentStatusReceived,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(order)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	order.RefreshTotalDemand()
	s.log.Info("assessment order recorded",
		zap.String("order_id", order.ID.String()),
		zap.String("assessment_year", order.AssessmentYear),
		zap.String("total_demand", order.TotalDemand.StringFixed(2)))
	return order, nil
}

func (s *assessmentService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.AssessmentOrder, error) {
	order, err := s.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	order.RefreshTotalDemand()
	return order, nil
}

func (s *assessmentService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.AssessmentOrder, int, error) {
	orders, total, err := s.repo.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range orders {
		orders[i].RefreshTotalDemand()
	}
	return orders, total, nil
}

func (s *assessmentService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input AssessmentInput) (*domain.AssessmentOrder, error) {
	var order *domain.AssessmentOrder
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if order.Status == domain.AssessmentStatusSettled {
			return domain.ErrRecordLocked
		}
		input.ClientID = order.ClientID
		if err := s.valid.Struct(input); err != nil {
			return err
		}
		input.apply(order)
		order.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	order.RefreshTotalDemand()
	return order, nil
}

func (s *assessmentService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

// ChangeStatus moves the order along its table. Moving to Appealed marks the
// appeal as filed, dated today unless an appeal date is given.
func (s *assessmentService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input AssessmentStatusInput) (*domain.AssessmentOrder, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	var order *domain.AssessmentOrder
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		to := domain.AssessmentStatus(input.Status)
		if err := domain.AssessmentTransitions.Check(order.Status, to); err != nil {
			return err
		}
		if to == domain.AssessmentStatusAppealed {
			order.AppealFiled = true
			order.AppealDate = mustDate(input.AppealDate)
			if order.AppealDate == nil {
				today := domain.StartOfDay(s.now())
				order.AppealDate = &today
			}
			if n := strings.TrimSpace(input.AppealNumber); n != "" {
				order.AppealNumber = n
			}
		}
		order.Status = to
		order.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("assessment order status changed",
		zap.String("order_id", id.String()),
		zap.String("status", string(order.Status)))
	order.RefreshTotalDemand()
	return order, nil
}
