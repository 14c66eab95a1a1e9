package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// ChallanInput is the DTO for recording or editing a challan payment.
type ChallanInput struct {
	ClientID       uuid.UUID       `json:"client_id" validate:"required"`
	ChallanNumber  string          `json:"challan_number" validate:"required,max=50"`
	ChallanType    string          `json:"challan_type" validate:"required,oneof='ITNS 280' 'ITNS 281' 'GST PMT-06' 'TDS Payment'"`
	TaxType        string          `json:"tax_type" validate:"required,oneof='Income Tax' TDS GST"`
	AssessmentYear string          `json:"assessment_year" validate:"omitempty,year_range"`
	Amount         decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentDate    string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
	BankName       string          `json:"bank_name" validate:"omitempty,max=200"`
	BankBranch     string          `json:"bank_branch" validate:"omitempty,max=200"`
	BSRCode        string          `json:"bsr_code" validate:"omitempty,len=7,numeric"`
	SerialNumber   string          `json:"serial_number" validate:"omitempty,max=5,numeric"`
	Remarks        string          `json:"remarks"`
}

// ChallanService defines the challan payment contract.
type ChallanService interface {
	Create(ctx context.Context, actor domain.Actor, input ChallanInput) (*domain.ChallanPayment, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ChallanPayment, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ChallanPayment, int, error)
	// Update edits a challan that has not cleared. The client is fixed once recorded.
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input ChallanInput) (*domain.ChallanPayment, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input StatusInput) (*domain.ChallanPayment, error)
}

type challanService struct {
	repo    port.ChallanRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	now     Clock
	log     *zap.Logger
}

// NewChallanService creates a new ChallanService implementation.
func NewChallanService(
	repo port.ChallanRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) ChallanService {
	return &challanService{repo: repo, clients: clients, tx: tx, valid: valid, now: clockOrNow(now), log: log}
}

// check validates input and the rules that span fields: the tax head must
// suit the challan form, and income tax challans name their assessment year.
func (s *challanService) check(input ChallanInput) error {
	if err := s.valid.Struct(input); err != nil {
		return err
	}
	verr := &domain.ValidationError{}
	tt := domain.TaxType(input.TaxType)
	if !slices.Contains(domain.ChallanTaxTypes[domain.ChallanType(input.ChallanType)], tt) {
		verr.Add("tax_type", "does not match challan type "+input.ChallanType)
	}
	if tt == domain.TaxTypeIncomeTax && input.AssessmentYear == "" {
		verr.Add("assessment_year", "is required for income tax challans")
	}
	return verr.OrNil()
}

func (in *ChallanInput) apply(c *domain.ChallanPayment) {
	c.ChallanNumber = strings.TrimSpace(in.ChallanNumber)
	c.ChallanType = domain.ChallanType(in.ChallanType)
	c.TaxType = domain.TaxType(in.TaxType)
	c.AssessmentYear = in.AssessmentYear
	c.Amount = in.Amount.Round(2)
	if d := mustDate(in.PaymentDate); d != nil {
		c.PaymentDate = *d
	}
	c.BankName = strings.TrimSpace(in.BankName)
	c.BankBranch = strings.TrimSpace(in.BankBranch)
	c.BSRCode = in.BSRCode
	c.SerialNumber = in.SerialNumber
	c.Remarks = in.Remarks
}

func (s *challanService) Create(ctx context.Context, actor domain.Actor, input ChallanInput) (*domain.ChallanPayment, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	challan := &domain.ChallanPayment{
		TenantID:  actor.TenantID,
		ClientID:  input.ClientID,
		Status:    domain.ChallanStatusPending,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(challan)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, challan)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("challan recorded",
		zap.String("challan_id", challan.ID.String()),
		zap.String("challan_number", challan.ChallanNumber))
	return challan, nil
}

func (s *challanService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ChallanPayment, error) {
	return s.repo.GetByID(ctx, actor.TenantID, id)
}

func (s *challanService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ChallanPayment, int, error) {
	return s.repo.List(ctx, actor.TenantID, filter)
}

func (s *challanService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input ChallanInput) (*domain.ChallanPayment, error) {
	var challan *domain.ChallanPayment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		challan, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if challan.Status == domain.ChallanStatusCleared {
			return domain.ErrRecordLocked
		}
		input.ClientID = challan.ClientID
		if err := s.check(input); err != nil {
			return err
		}
		input.apply(challan)
		challan.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, challan)
	})
	if err != nil {
		return nil, err
	}
	return challan, nil
}

func (s *challanService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

// ChangeStatus moves the challan along its table. Clearing stamps ClearedAt;
// any other status leaves it empty.
func (s *challanService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input StatusInput) (*domain.ChallanPayment, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	var challan *domain.ChallanPayment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		challan, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		to := domain.ChallanStatus(input.Status)
		if err := domain.ChallanTransitions.Check(challan.Status, to); err != nil {
			return err
		}
		challan.Status = to
		challan.ClearedAt = nil
		if to == domain.ChallanStatusCleared {
			cleared := s.now().UTC()
			challan.ClearedAt = &cleared
		}
		challan.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, challan)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("challan status changed",
		zap.String("challan_id", id.String()),
		zap.String("status", input.Status))
	return challan, nil
}
