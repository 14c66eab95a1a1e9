package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

const (
	defaultRecentGSTINs = 10
	maxRecentGSTINs     = 100
	maxGSTINInput       = 20
)

// GSTINService records GSTIN checks so that staff can see what was verified
// recently.
type GSTINService interface {
	// Validate checks gstin and records the outcome. Invalid GSTINs are
	// recorded too; only blank or oversized input is rejected.
	Validate(ctx context.Context, actor domain.Actor, gstin string) (*domain.GSTINValidation, error)
	// Recent lists the most recently checked GSTINs. A non-positive limit
	// means 10; larger limits are capped at 100.
	Recent(ctx context.Context, actor domain.Actor, limit int) ([]domain.GSTINValidation, error)
}

type gstinService struct {
	repo port.GSTINValidationRepository
	now  Clock
	log  *zap.Logger
}

// NewGSTINService creates a new GSTINService implementation.
func NewGSTINService(repo port.GSTINValidationRepository, now Clock, log *zap.Logger) GSTINService {
	return &gstinService{repo: repo, now: clockOrNow(now), log: log}
}

func (s *gstinService) Validate(ctx context.Context, actor domain.Actor, gstin string) (*domain.GSTINValidation, error) {
	gstin = strings.ToUpper(strings.TrimSpace(gstin))
	switch {
	case gstin == "":
		return nil, domain.NewValidationError("gstin", "is required")
	case len(gstin) > maxGSTINInput:
		return nil, domain.NewValidationError("gstin", "must be at most 20 characters")
	}

	check := validator.CheckGSTIN(gstin)
	v := &domain.GSTINValidation{
		TenantID:      actor.TenantID,
		GSTIN:         gstin,
		IsValid:       check.Valid,
		StateCode:     check.StateCode,
		StateName:     check.StateName,
		EmbeddedPAN:   check.EmbeddedPAN,
		Message:       check.Message,
		LastCheckedBy: actor.UserID,
		LastValidated: s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, v); err != nil {
		return nil, err
	}
	s.log.Debug("gstin checked",
		zap.String("gstin", gstin),
		zap.Bool("valid", v.IsValid),
		zap.Int("check_count", v.CheckCount))
	return v, nil
}

func (s *gstinService) Recent(ctx context.Context, actor domain.Actor, limit int) ([]domain.GSTINValidation, error) {
	switch {
	case limit <= 0:
		limit = defaultRecentGSTINs
	case limit > maxRecentGSTINs:
		limit = maxRecentGSTINs
	}
	return s.repo.ListRecent(ctx, actor.TenantID, limit)
}
