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

// AuditInput is the DTO for creating or editing a balance sheet audit.
type AuditInput struct {
	ClientID               uuid.UUID `json:"client_id" validate:"required"`
	FinancialYear          string    `json:"financial_year" validate:"required,year_range"`
	AuditType              string    `json:"audit_type" validate:"required,oneof=Statutory Tax Internal Bank Government"`
	BalanceSheetDate       string    `json:"balance_sheet_date" validate:"required,datetime=2006-01-02"`
	AuditorName            string    `json:"auditor_name" validate:"omitempty,max=200"`
	AuditorMembershipNo    string    `json:"auditor_membership_no" validate:"omitempty,max=20"`
	OpinionType            string    `json:"opinion_type" validate:"omitempty,oneof=Unqualified Qualified Adverse Disclaimer"`
	KeyAuditMatters        string    `json:"key_audit_matters"`
	ManagementLetterIssued bool      `json:"management_letter_issued"`
}

// AuditStatusInput is the DTO for an audit status change. CompletionDate
// defaults to today when an audit is completed without one.
type AuditStatusInput struct {
	Status         string `json:"status" validate:"required"`
	CompletionDate string `json:"audit_completion_date" validate:"omitempty,datetime=2006-01-02"`
}

// AuditService defines the balance sheet audit contract.
type AuditService interface {
	Create(ctx context.Context, actor domain.Actor, input AuditInput) (*domain.BalanceSheetAudit, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.BalanceSheetAudit, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.BalanceSheetAudit, int, error)
	// Update edits a non-submitted audit. The client is fixed once recorded.
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input AuditInput) (*domain.BalanceSheetAudit, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input AuditStatusInput) (*domain.BalanceSheetAudit, error)
}

type auditService struct {
	repo    port.AuditRepository
	clients port.ClientRepository
	tx      port.Transactor
	valid   *validator.Validator
	now     Clock
	log     *zap.Logger
}

// NewAuditService creates a new AuditService implementation.
func NewAuditService(
	repo port.AuditRepository,
	clients port.ClientRepository,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) AuditService {
	return &auditService{repo: repo, clients: clients, tx: tx, valid: valid, now: clockOrNow(now), log: log}
}

// check validates input, including that the balance sheet date falls in the
// audited financial year.
func (s *auditService) check(input AuditInput) error {
	if err := s.valid.Struct(input); err != nil {
		return err
	}
	if d := mustDate(input.BalanceSheetDate); d != nil && domain.FinancialYear(*d) != input.FinancialYear {
		return domain.NewValidationError("balance_sheet_date", "must fall within financial year "+input.FinancialYear)
	}
	return nil
}

func (in *AuditInput) apply(a *domain.BalanceSheetAudit) {
	a.FinancialYear = in.FinancialYear
	a.AuditType = domain.AuditType(in.AuditType)
	if d := mustDate(in.BalanceSheetDate); d != nil {
		a.BalanceSheetDate = *d
	}
	a.AuditorName = strings.TrimSpace(in.AuditorName)
	a.AuditorMembershipNo = strings.TrimSpace(in.AuditorMembershipNo)
	a.OpinionType = domain.AuditOpinion(in.OpinionType)
	a.KeyAuditMatters = in.KeyAuditMatters
	a.ManagementLetterIssued = in.ManagementLetterIssued
}

func (s *auditService) Create(ctx context.Context, actor domain.Actor, input AuditInput) (*domain.BalanceSheetAudit, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	audit := &domain.BalanceSheetAudit{
		TenantID:  actor.TenantID,
		ClientID:  input.ClientID,
		Status:    domain.AuditStatusInProgress,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(audit)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.GetByID(ctx, actor.TenantID, input.ClientID); err != nil {
			return err
		}
		return s.repo.Create(ctx, audit)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("audit created",
		zap.String("audit_id", audit.ID.String()),
		zap.String("financial_year", audit.FinancialYear))
	return audit, nil
}

func (s *auditService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.BalanceSheetAudit, error) {
	return s.repo.GetByID(ctx, actor.TenantID, id)
}

func (s *auditService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.BalanceSheetAudit, int, error) {
	return s.repo.List(ctx, actor.TenantID, filter)
}

func (s *auditService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input AuditInput) (*domain.BalanceSheetAudit, error) {
	var audit *domain.BalanceSheetAudit
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		audit, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if audit.Status == domain.AuditStatusSubmitted {
			return domain.ErrRecordLocked
		}
		input.ClientID = audit.ClientID
		if err := s.check(input); err != nil {
			return err
		}
		input.apply(audit)
		audit.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, audit)
	})
	if err != nil {
		return nil, err
	}
	return audit, nil
}

func (s *auditService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

// ChangeStatus moves the audit along its table. Completing an audit needs an
// opinion on record; reopening clears the completion date.
func (s *auditService) ChangeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input AuditStatusInput) (*domain.BalanceSheetAudit, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}

	var audit *domain.BalanceSheetAudit
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		audit, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		to := domain.AuditStatus(input.Status)
		if err := domain.AuditTransitions.Check(audit.Status, to); err != nil {
			return err
		}
		switch to {
		case domain.AuditStatusCompleted:
			if audit.OpinionType == "" {
				return domain.NewValidationError("opinion_type", "is required to complete an audit")
			}
			audit.CompletionDate = mustDate(input.CompletionDate)
			if audit.CompletionDate == nil {
				today := domain.StartOfDay(s.now())
				audit.CompletionDate = &today
			}
		case domain.AuditStatusInProgress:
			audit.CompletionDate = nil
		}
		audit.Status = to
		audit.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, audit)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("audit status changed",
		zap.String("audit_id", id.String()),
		zap.String("status", string(audit.Status)))
	return audit, nil
}
