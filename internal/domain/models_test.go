package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"taxdesk/internal/domain"
)

func TestCMAReport_RefreshUtilization(t *testing.T) {
	tests := []struct {
		name     string
		limit    string
		utilized string
		percent  string
		over     bool
	}{
		{"partly drawn", "5000000", "3750000", "75", false},
		{"rounded to paise", "300000", "100000", "33.33", false},
		{"over limit", "1000000", "1200000", "120", true},
		{"no limit sanctioned", "0", "50000", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.CMAReport{
				WorkingCapitalLimit: decimal.RequireFromString(tt.limit),
				UtilizedAmount:      decimal.RequireFromString(tt.utilized),
			}
			r.RefreshUtilization()
			assert.True(t, decimal.RequireFromString(tt.percent).Equal(r.UtilizationPercent), r.UtilizationPercent.String())
			assert.Equal(t, tt.over, r.OverLimit)
		})
	}
}

func TestAssessmentOrder_RefreshTotalDemand(t *testing.T) {
	o := &domain.AssessmentOrder{
		TaxDemanded:     decimal.RequireFromString("125000"),
		InterestCharged: decimal.RequireFromString("18750.50"),
		PenaltyImposed:  decimal.Zero,
	}
	o.RefreshTotalDemand()
	assert.Equal(t, "143750.5", o.TotalDemand.String())
}
