package aggregate_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/aggregate"
	"taxdesk/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func TestMonthlyTrend_TrailingWindowWithZeroFill(t *testing.T) {
	now := date(2024, 3, 20)
	fees := []domain.OutstandingFee{
		{Status: domain.FeeStatusPaid, Amount: decimal.NewFromInt(1000), PaidAt: ptr(date(2024, 3, 2))},
		{Status: domain.FeeStatusPaid, Amount: decimal.NewFromInt(500), PaidAt: ptr(date(2024, 3, 15))},
		{Status: domain.FeeStatusPaid, Amount: decimal.NewFromInt(250), PaidAt: ptr(date(2023, 11, 30))},
		// Outside the window.
		{Status: domain.FeeStatusPaid, Amount: decimal.NewFromInt(9999), PaidAt: ptr(date(2023, 9, 30))},
		// Pending fees never count as revenue.
		{Status: domain.FeeStatusPending, Amount: decimal.NewFromInt(700), CreatedAt: date(2024, 2, 1)},
		// Paid without a payment time falls back to creation time.
		{Status: domain.FeeStatusPaid, Amount: decimal.NewFromInt(300), CreatedAt: date(2024, 1, 10)},
	}

	trend := aggregate.PaidRevenueTrend(fees, now, 6)

	require.Len(t, trend, 6)
	labels := make([]string, 0, len(trend))
	for _, b := range trend {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, labels)
	assert.Equal(t, "2023-10", trend[0].Month)
	assert.True(t, trend[0].Value.IsZero())
	assert.True(t, trend[1].Value.Equal(decimal.NewFromInt(250)))
	assert.True(t, trend[2].Value.IsZero())
	assert.True(t, trend[3].Value.Equal(decimal.NewFromInt(300)))
	assert.True(t, trend[4].Value.IsZero())
	assert.True(t, trend[5].Value.Equal(decimal.NewFromInt(1500)))
}

func TestMonthlyTrend_DefaultWindow(t *testing.T) {
	trend := aggregate.MonthlyTrend([]int{}, date(2024, 8, 31), 0, nil,
		func(int) time.Time { return time.Time{} },
		func(int) decimal.Decimal { return decimal.Zero })

	require.Len(t, trend, aggregate.DefaultTrendMonths)
	assert.Equal(t, "Mar", trend[0].Label)
	assert.Equal(t, "Aug", trend[5].Label)
}

func TestPendingAndOverdueFees(t *testing.T) {
	today := date(2024, 7, 15)
	fees := []domain.OutstandingFee{
		{Status: domain.FeeStatusPending, Amount: decimal.NewFromInt(1000), DueDate: ptr(date(2024, 7, 1))},
		{Status: domain.FeeStatusPending, Amount: decimal.RequireFromString("250.75"), DueDate: ptr(date(2024, 8, 1))},
		{Status: domain.FeeStatusPending, Amount: decimal.NewFromInt(100)},
		{Status: domain.FeeStatusPaid, Amount: decimal.NewFromInt(5000), DueDate: ptr(date(2024, 6, 1))},
	}

	assert.Equal(t, "1350.75", aggregate.PendingFeeTotal(fees).String())
	assert.Equal(t, 1, aggregate.OverdueFeeCount(fees, today))
	assert.True(t, aggregate.OverdueFeeTotal(fees, today).Equal(decimal.NewFromInt(1000)))
}

func TestPaidFeeTotal_DateRange(t *testing.T) {
	fees := []domain.OutstandingFee{
		{Status: domain.FeeStatusPaid, Amount: decimal.NewFromInt(100), PaidAt: ptr(date(2024, 1, 10))},
		{Status: domain.FeeStatusPaid, Amount: decimal.NewFromInt(200), PaidAt: ptr(date(2024, 2, 10))},
		{Status: domain.FeeStatusPending, Amount: decimal.NewFromInt(400), CreatedAt: date(2024, 2, 10)},
	}

	from := date(2024, 2, 1)
	assert.True(t, aggregate.PaidFeeTotal(fees, &from, nil).Equal(decimal.NewFromInt(200)))
	assert.True(t, aggregate.PaidFeeTotal(fees, nil, nil).Equal(decimal.NewFromInt(300)))
	to := date(2024, 1, 10)
	assert.True(t, aggregate.PaidFeeTotal(fees, nil, &to).Equal(decimal.NewFromInt(100)))
}

func TestBetween_ToCoversWholeDay(t *testing.T) {
	to := date(2024, 7, 15)

	assert.True(t, aggregate.Between(to.Add(10*time.Hour), nil, &to))
	assert.True(t, aggregate.Between(to.Add(24*time.Hour-time.Nanosecond), nil, &to))
	assert.False(t, aggregate.Between(date(2024, 7, 16), nil, &to))
	assert.False(t, aggregate.Between(date(2024, 7, 14), &to, nil))
}

func TestFilingCounts(t *testing.T) {
	today := date(2024, 7, 15)
	filings := []domain.ReturnFiling{
		{Kind: domain.FilingKindIncomeTax, Status: domain.FilingStatusPending, DueDate: ptr(date(2024, 7, 31))},
		{Kind: domain.FilingKindIncomeTax, Status: domain.FilingStatusFiled, DueDate: ptr(date(2024, 7, 1))},
		{Kind: domain.FilingKindGST, Status: domain.FilingStatusPending, DueDate: ptr(date(2024, 7, 11))},
		{Kind: domain.FilingKindTDS, Status: domain.FilingStatusPending},
	}

	assert.Equal(t, 1, aggregate.FilingCount(filings, domain.FilingKindIncomeTax, domain.FilingStatusPending))
	assert.Equal(t, 3, aggregate.FilingCount(filings, "", domain.FilingStatusPending))
	assert.Equal(t, 1, aggregate.OverdueFilingCount(filings, today))
	assert.Equal(t, map[domain.FilingStatus]int{
		domain.FilingStatusPending: 1,
		domain.FilingStatusFiled:   1,
	}, aggregate.FilingsByStatus(filings, domain.FilingKindIncomeTax))
}

func TestClientsByType_OrderedSeries(t *testing.T) {
	clients := []domain.Client{
		{ClientType: domain.ClientTypeCompany},
		{ClientType: domain.ClientTypeIndividual},
		{ClientType: domain.ClientTypeIndividual},
		{ClientType: domain.ClientTypeLLP},
	}

	assert.Equal(t, []aggregate.Point{
		{Label: "Individual", Count: 2},
		{Label: "Company", Count: 1},
		{Label: "LLP", Count: 1},
	}, aggregate.ClientsByType(clients))
}

func TestEmployeeAggregates(t *testing.T) {
	employees := []domain.Employee{
		{Department: "Audit", Status: domain.EmployeeStatusActive},
		{Department: "Audit", Status: domain.EmployeeStatusInactive},
		{Department: "Tax", Status: domain.EmployeeStatusActive},
		{Department: "", Status: domain.EmployeeStatusActive},
	}

	assert.Equal(t, 2, aggregate.DepartmentCount(employees))
	assert.Equal(t, 3, aggregate.ActiveEmployeeCount(employees))
}

func TestPayrollTotals(t *testing.T) {
	entries := []domain.PayrollEntry{
		{BasicSalary: decimal.NewFromInt(1000), Allowances: decimal.NewFromInt(200), NetSalary: decimal.NewFromInt(900)},
		{BasicSalary: decimal.NewFromInt(2000), NetSalary: decimal.NewFromInt(1800)},
	}

	gross, net := aggregate.PayrollTotals(entries)
	assert.True(t, gross.Equal(decimal.NewFromInt(3200)))
	assert.True(t, net.Equal(decimal.NewFromInt(2700)))
}

func TestInventoryAggregates(t *testing.T) {
	items := []domain.InventoryItem{
		{UnitPrice: decimal.NewFromInt(10), CurrentStock: 5, StockStatus: domain.StockStatusIn},
		{UnitPrice: decimal.NewFromInt(3), CurrentStock: 2, StockStatus: domain.StockStatusLow},
		{UnitPrice: decimal.NewFromInt(99), CurrentStock: 0, StockStatus: domain.StockStatusOut},
	}

	assert.True(t, aggregate.StockValue(items).Equal(decimal.NewFromInt(56)))
	assert.Equal(t, 1, aggregate.ItemsByStockStatus(items)[domain.StockStatusOut])
}

func TestOverdueReminderCount(t *testing.T) {
	today := date(2024, 7, 15)
	reminders := []domain.Reminder{
		{Status: domain.ReminderStatusActive, ReminderDate: date(2024, 7, 14)},
		{Status: domain.ReminderStatusActive, ReminderDate: date(2024, 7, 15)},
		{Status: domain.ReminderStatusCompleted, ReminderDate: date(2024, 7, 1)},
	}

	assert.Equal(t, 1, aggregate.OverdueReminderCount(reminders, today))
}

func TestDistinctCount_IgnoresZeroKeys(t *testing.T) {
	n := aggregate.DistinctCount([]string{"a", "", "b", "a"}, func(s string) string { return s })
	assert.Equal(t, 2, n)
}
