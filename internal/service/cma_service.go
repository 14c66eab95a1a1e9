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

// CMAInput is the DTO for creating or editing a CMA report.
type CMAInput struct {
	ClientID             uuid.UUID       `json:"client_id" validate:"required"`
	ReportingPeriod      string          `json:"reporting_period" validate:"required,oneof=Monthly Quarterly Annual"`
	ReportDate           string          `json:"report_date" validate:"required,datetime=2006-01-02"`
	BankName             string          `json:"bank_name" validate:"omitempty,max=200"`
	WorkingCapitalLimit  decimal.Decimal `json:"working_capital_limit" validate:"gte=0"`
	UtilizedAmount       decimal.Decimal `json:"utilized_amount" validate:"gte=0"`
	CashCreditLimit      decimal.Decimal `json:"cash_credit_limit" validate:"gte=0"`
	OverdraftLimit       decimal.Decimal `json:"overdraft_limit" validate:"gte=0"`
	BillDiscountingLimit decimal.Decimal `json:"bill_discounting_limit" validate:"gte=0"`
	LetterOfCredit       decimal.Decimal `json:"letter_of_credit" validate:"gte=0"`
	BankGuarantee        decimal.Decimal `json:"bank_guarantee" validate:"gte=0"`
	InventoryValue       decimal.Decimal `json:"inventory_value" validate:"gte=0"`
	ReceivablesValue     decimal.Decimal `json:"receivables_value" validate:"gte=0"`
	Remarks              string          `json:"remarks"`
}

// CMAService defines the CMA report contract. Every returned report carries
// its derived utilization.
type CMAService interface {
	Create(ctx context.Context, actor domain.Actor, input CMAInput) (*domain.CMAReport, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.CMAReport, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.CMAReport, int, error)
	// Update edits a Draft report. Final reports go back to Draft first.
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input CMAInput) (*domain.CMAReport, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input StatusInput) (*domain.CMAReport, error)
}

type cmaService struct {
	repo    port.CMAReportRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	log     *zap.Logger
}

// NewCMAService creates a new CMAService implementation.
func NewCMAService(
	repo port.CMAReportRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	log *zap.Logger,
) CMAService {
	return &cmaService{repo: repo, clients: clients, tx: tx, valid: valid, log: log}
}

func (in *CMAInput) apply(r *domain.CMAReport) {
	r.ReportingPeriod = domain.CMAPeriod(in.ReportingPeriod)
	if d := mustDate(in.ReportDate); d != nil {
		r.ReportDate = *d
	}
	r.BankName = strings.TrimSpace(in.BankName)
	r.WorkingCapitalLimit = in.WorkingCapitalLimit.Round(2)
	r.UtilizedAmount = in.UtilizedAmount.Round(2)
	r.CashCreditLimit = in.CashCreditLimit.Round(2)
	r.OverdraftLimit = in.OverdraftLimit.Round(2)
	r.BillDiscountingLimit = in.BillDiscountingLimit.Round(2)
	r.LetterOfCredit = in.LetterOfCredit.Round(2)
	r.BankGuarantee = in.BankGuarantee.Round(2)
	r.InventoryValue = in.InventoryValue.Round(2)
	r.ReceivablesValue = in.ReceivablesValue.Round(2)
	r.Remarks = in.Remarks
}

func (s *cmaService) Create(ctx context.Context, actor domain.Actor, input CMAInput) (*domain.CMAReport, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	report := &domain.CMAReport{
		TenantID:  actor.TenantID,
		ClientID:  input.ClientID,
		Status:    domain.CMAStatusDraft,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(report)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, report)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("cma report created", zap.String("report_id", report.ID.String()))
	report.RefreshUtilization()
	return report, nil
}

func (s *cmaService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.CMAReport, error) {
	report, err := s.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	report.RefreshUtilization()
	return report, nil
}

func (s *cmaService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.CMAReport, int, error) {
	reports, total, err := s.repo.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range reports {
		reports[i].RefreshUtilization()
	}
	return reports, total, nil
}

func (s *cmaService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input CMAInput) (*domain.CMAReport, error) {
	var report *domain.CMAReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if report.Status != domain.CMAStatusDraft {
			return domain.ErrRecordLocked
		}
		input.ClientID = report.ClientID
		if err := s.valid.Struct(input); err != nil {
			return err
		}
		input.apply(report)
		report.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, report)
	})
	if err != nil {
		return nil, err
	}
	report.RefreshUtilization()
	return report, nil
}

func (s *cmaService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

func (s *cmaService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input StatusInput) (*domain.CMAReport, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	var report *domain.CMAReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		to := domain.CMAStatus(input.Status)
		if err := domain.CMATransitions.Check(report.Status, to); err != nil {
			return err
		}
		report.Status = to
		report.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, report)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("cma report status changed",
		zap.String("report_id", id.String()),
		zap.String("status", input.Status))
	report.RefreshUtilization()
	return report, nil
}
