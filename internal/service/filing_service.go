package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// FilingInput is the DTO for creating or editing a return filing. Kind is
// fixed at creation and ignored on update.
type FilingInput struct {
	ClientID             uuid.UUID       `json:"client_id" validate:"required"`
	Kind                 string          `json:"kind" validate:"required,oneof=income_tax tds gst roc sft xbrl"`
	FormType             string          `json:"form_type" validate:"required,max=30"`
	Period               string          `json:"period" validate:"omitempty,max=10"`
	SubPeriod            string          `json:"sub_period" validate:"omitempty,max=10"`
	TAN                  string          `json:"tan"`
	GSTIN                string          `json:"gstin"`
	DueDate              string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	FilingDate           string          `json:"filing_date" validate:"omitempty,datetime=2006-01-02"`
	AcknowledgmentNumber string          `json:"acknowledgment_number" validate:"omitempty,max=50"`
	TaxableAmount        decimal.Decimal `json:"taxable_amount" validate:"gte=0"`
	TaxAmount            decimal.Decimal `json:"tax_amount" validate:"gte=0"`
	RefundAmount         decimal.Decimal `json:"refund_amount" validate:"gte=0"`
	LateFee              decimal.Decimal `json:"late_fee" validate:"gte=0"`
	TransactionCount     int             `json:"transaction_count" validate:"gte=0"`
	FilingCategory       string          `json:"filing_category" validate:"omitempty,max=50"`
	ValidationStatus     string          `json:"validation_status" validate:"omitempty,oneof=Pending Valid Invalid"`
	ValidationErrors     string          `json:"validation_errors"`
	DocumentID           *uuid.UUID      `json:"document_id"`
	Remarks              string          `json:"remarks"`
}

// FilingStatusInput is the DTO for a status change.
type FilingStatusInput struct {
	Status               string `json:"status" validate:"required"`
	FilingDate           string `json:"filing_date" validate:"omitempty,datetime=2006-01-02"`
	AcknowledgmentNumber string `json:"acknowledgment_number" validate:"omitempty,max=50"`
}

// checkKindRules validates the fields whose rules depend on the filing kind.
func (in *FilingInput) checkKindRules(kind domain.FilingKind) error {
	verr := &domain.ValidationError{}
	if !containsString(domain.FormTypes[kind], in.FormType) {
		verr.Add("form_type", "must be one of: "+strings.Join(domain.FormTypes[kind], ", "))
	}
	switch kind {
	case domain.FilingKindTDS:
		if !validator.IsTAN(in.TAN) {
			verr.Add("tan", "TAN must be exactly 10 characters")
		}
	case domain.FilingKindGST:
		if !validator.IsGSTIN(in.GSTIN) {
			verr.Add("gstin", "GSTIN format is invalid")
		}
	}
	if kind != domain.FilingKindXBRL && in.ValidationStatus != "" {
		verr.Add("validation_status", "only applies to XBRL filings")
	}
	return verr.OrNil()
}

func (in *FilingInput) apply(f *domain.ReturnFiling) {
	f.ClientID = in.ClientID
	f.FormType = in.FormType
	f.Period = in.Period
	f.SubPeriod = in.SubPeriod
	f.TAN = in.TAN
	f.GSTIN = in.GSTIN
	f.DueDate = mustDate(in.DueDate)
	f.FilingDate = mustDate(in.FilingDate)
	f.AcknowledgmentNumber = in.AcknowledgmentNumber
	f.TaxableAmount = in.TaxableAmount
	f.TaxAmount = in.TaxAmount
	f.RefundAmount = in.RefundAmount
	f.LateFee = in.LateFee
	f.TransactionCount = in.TransactionCount
	f.FilingCategory = in.FilingCategory
	f.ValidationErrors = in.ValidationErrors
	f.DocumentID = in.DocumentID
	f.Remarks = in.Remarks
	if f.Kind == domain.FilingKindXBRL {
		f.ValidationStatus = domain.XBRLValidationStatus(in.ValidationStatus)
		if f.ValidationStatus == "" {
			f.ValidationStatus = domain.XBRLValidationPending
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// FilingService defines the return filing contract shared by every filing kind.
type FilingService interface {
	Create(ctx context.Context, actor domain.Actor, input FilingInput) (*domain.ReturnFiling, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ReturnFiling, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ReturnFiling, int, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input FilingInput) (*domain.ReturnFiling, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input FilingStatusInput) (*domain.ReturnFiling, error)
	// Tracker lists every filing that is not yet settled, earliest due date first.
	Tracker(ctx context.Context, actor domain.Actor) ([]domain.ReturnFiling, error)
}

type filingService struct {
	repo    port.FilingRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	now     Clock
	log     *zap.Logger
}

// NewFilingService creates a new FilingService implementation.
func NewFilingService(
	repo port.FilingRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) FilingService {
	return &filingService{repo: repo, clients: clients, tx: tx, valid: valid, now: clockOrNow(now), log: log}
}

func (s *filingService) Create(ctx context.Context, actor domain.Actor, input FilingInput) (*domain.ReturnFiling, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	kind := domain.FilingKind(input.Kind)
	if err := input.checkKindRules(kind); err != nil {
		return nil, err
	}

	filing := &domain.ReturnFiling{
		TenantID:  actor.TenantID,
		Kind:      kind,
		Status:    domain.InitialFilingStatus(kind),
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(filing)
	if filing.Period == "" {
		filing.Period = defaultPeriod(kind, s.now())
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, filing)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("filing created",
		zap.String("tenant_id", actor.TenantID.String()),
		zap.String("filing_id", filing.ID.String()),
		zap.String("kind", string(kind)))
	filing.RefreshOverdue(s.now())
	return filing, nil
}

// defaultPeriod is the assessment year for income tax and the financial year otherwise.
func defaultPeriod(kind domain.FilingKind, now time.Time) string {
	if kind == domain.FilingKindIncomeTax {
		return domain.AssessmentYear(now)
	}
	return domain.FinancialYear(now)
}

func (s *filingService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ReturnFiling, error) {
	filing, err := s.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	filing.RefreshOverdue(s.now())
	return filing, nil
}

func (s *filingService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.ReturnFiling, int, error) {
	filings, total, err := s.repo.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	today := s.now()
	for i := range filings {
		filings[i].RefreshOverdue(today)
	}
	return filings, total, nil
}

func (s *filingService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input FilingInput) (*domain.ReturnFiling, error) {
	var filing *domain.ReturnFiling
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		filing, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		input.Kind = string(filing.Kind)
		if err := s.valid.Struct(input); err != nil {
			return err
		}
		if err := input.checkKindRules(filing.Kind); err != nil {
			return err
		}
		if input.ClientID != filing.ClientID {
			if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
				return err
			}
		}
		input.apply(filing)
		if filing.Period == "" {
			filing.Period = defaultPeriod(filing.Kind, s.now())
		}
		filing.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, filing)
	})
	if err != nil {
		return nil, err
	}
	filing.RefreshOverdue(s.now())
	return filing, nil
}

func (s *filingService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

// ChangeStatus moves a filing along its kind's transition table. Reaching
// Filed stamps the filing date with today unless one is given or already set.
func (s *filingService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input FilingStatusInput) (*domain.ReturnFiling, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	var filing *domain.ReturnFiling
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		filing, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		to := domain.FilingStatus(input.Status)
		if err := domain.FilingTransitions[filing.Kind].Check(filing.Status, to); err != nil {
			return err
		}
		filing.Status = to
		if d := mustDate(input.FilingDate); d != nil {
			filing.FilingDate = d
		}
		if to == domain.FilingStatusFiled && filing.FilingDate == nil {
			today := domain.StartOfDay(s.now())
			filing.FilingDate = &today
		}
		if input.AcknowledgmentNumber != "" {
			filing.AcknowledgmentNumber = input.AcknowledgmentNumber
		}
		filing.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, filing)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("filing status changed",
		zap.String("filing_id", id.String()),
		zap.String("status", string(filing.Status)))
	filing.RefreshOverdue(s.now())
	return filing, nil
}

func (s *filingService) Tracker(ctx context.Context, actor domain.Actor) ([]domain.ReturnFiling, error) {
	filings, err := s.repo.ListUnsettled(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}
	today := s.now()
	for i := range filings {
		filings[i].RefreshOverdue(today)
	}
	return filings, nil
}
