package service

import (
	"context"

	"github.com/shopspring/decimal"

	"taxdesk/internal/aggregate"
	"taxdesk/internal/config"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// Dashboard is the practice overview shown on the landing page.
type Dashboard struct {
	TotalClients      int               `json:"total_clients"`
	PendingITR        int               `json:"pending_itr"`
	PendingTDS        int               `json:"pending_tds"`
	PendingGST        int               `json:"pending_gst"`
	TotalOutstanding  decimal.Decimal   `json:"total_outstanding"`
	OverdueFees       int               `json:"overdue_fees"`
	OverdueFilings    int               `json:"overdue_filings"`
	OverdueReminders  int               `json:"overdue_reminders"`
	RecentClients     []domain.Client   `json:"recent_clients"`
	UpcomingReminders []domain.Reminder `json:"upcoming_reminders"`
}

// Analytics holds the trend and distribution views.
type Analytics struct {
	MonthlyRevenue []aggregate.Bucket                                `json:"monthly_revenue"`
	ClientsByType  []aggregate.Point                                 `json:"clients_by_type"`
	FilingsByKind  map[domain.FilingKind]map[domain.FilingStatus]int `json:"filings_by_kind"`
	PaidTotal      decimal.Decimal                                   `json:"paid_total"`
}

// DashboardService computes aggregation views. Every call re-reads the
// underlying rows; nothing is cached.
type DashboardService interface {
	Dashboard(ctx context.Context, actor domain.Actor) (*Dashboard, error)
	Analytics(ctx context.Context, actor domain.Actor, months int) (*Analytics, error)
}

type dashboardService struct {
	clients   port.ClientRepository
	filings   port.FilingRepository
	fees      port.FeeRepository
	reminders ReminderService
	cfg       config.DashboardConfig
	now       Clock
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(
	clients port.ClientRepository,
	filings port.FilingRepository,
	fees port.FeeRepository,
	reminders ReminderService,
	cfg config.DashboardConfig,
	now Clock,
) DashboardService {
	return &dashboardService{
		clients:   clients,
		filings:   filings,
		fees:      fees,
		reminders: reminders,
		cfg:       cfg,
		now:       clockOrNow(now),
	}
}

func (s *dashboardService) Dashboard(ctx context.Context, actor domain.Actor) (*Dashboard, error) {
	today := s.now()

	recent, totalClients, err := s.clients.List(ctx, actor.TenantID, domain.ListFilter{Limit: s.cfg.RecentClientRows})
	if err != nil {
		return nil, err
	}
	filings, _, err := s.filings.List(ctx, actor.TenantID, domain.ListFilter{})
	if err != nil {
		return nil, err
	}
	fees, _, err := s.fees.List(ctx, actor.TenantID, domain.ListFilter{})
	if err != nil {
		return nil, err
	}
	upcoming, err := s.reminders.Upcoming(ctx, actor, s.cfg.UpcomingDays)
	if err != nil {
		return nil, err
	}
	overdueReminders, err := s.reminders.OverdueCount(ctx, actor)
	if err != nil {
		return nil, err
	}

	for i := range recent {
		decorate(&recent[i])
	}
	return &Dashboard{
		TotalClients:      totalClients,
		PendingITR:        aggregate.FilingCount(filings, domain.FilingKindIncomeTax, domain.FilingStatusPending),
		PendingTDS:        aggregate.FilingCount(filings, domain.FilingKindTDS, domain.FilingStatusPending),
		PendingGST:        aggregate.FilingCount(filings, domain.FilingKindGST, domain.FilingStatusPending),
		TotalOutstanding:  aggregate.PendingFeeTotal(fees),
		OverdueFees:       aggregate.OverdueFeeCount(fees, today),
		OverdueFilings:    aggregate.OverdueFilingCount(filings, today),
		OverdueReminders:  overdueReminders,
		RecentClients:     recent,
		UpcomingReminders: upcoming,
	}, nil
}

func (s *dashboardService) Analytics(ctx context.Context, actor domain.Actor, months int) (*Analytics, error) {
	if months <= 0 {
		months = s.cfg.TrendMonths
	}
	fees, _, err := s.fees.List(ctx, actor.TenantID, domain.ListFilter{Status: string(domain.FeeStatusPaid)})
	if err != nil {
		return nil, err
	}
	clients, _, err := s.clients.List(ctx, actor.TenantID, domain.ListFilter{})
	if err != nil {
		return nil, err
	}
	filings, _, err := s.filings.List(ctx, actor.TenantID, domain.ListFilter{})
	if err != nil {
		return nil, err
	}

	byKind := make(map[domain.FilingKind]map[domain.FilingStatus]int, len(domain.FilingKinds))
	for _, kind := range domain.FilingKinds {
		byKind[kind] = aggregate.FilingsByStatus(filings, kind)
	}
	return &Analytics{
		MonthlyRevenue: aggregate.PaidRevenueTrend(fees, s.now(), months),
		ClientsByType:  aggregate.ClientsByType(clients),
		FilingsByKind:  byKind,
		PaidTotal:      aggregate.PaidFeeTotal(fees, nil, nil),
	}, nil
}
