package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"taxdesk/internal/domain"
)

// The functions below are the named views shared by the dashboard and the
// reports so that both compute the same totals the same way.

func feeAmount(f domain.OutstandingFee) decimal.Decimal { return f.Amount }

// PendingFeeTotal sums the amounts of fees still awaiting payment.
func PendingFeeTotal(fees []domain.OutstandingFee) decimal.Decimal {
	return SumBy(fees, func(f domain.OutstandingFee) bool {
		return f.Status == domain.FeeStatusPending
	}, feeAmount)
}

// PaidFeeTotal sums paid fees paid between from and the end of the day of to.
func PaidFeeTotal(fees []domain.OutstandingFee, from, to *time.Time) decimal.Decimal {
	return SumBy(fees, func(f domain.OutstandingFee) bool {
		return f.Status == domain.FeeStatusPaid && Between(paidAt(f), from, to)
	}, feeAmount)
}

// OverdueFeeCount counts unpaid fees whose due date has passed.
func OverdueFeeCount(fees []domain.OutstandingFee, today time.Time) int {
	return Count(fees, func(f domain.OutstandingFee) bool {
		return domain.IsOverdue(f.DueDate, f.Status.Settled(), today)
	})
}

// OverdueFeeTotal sums unpaid fees whose due date has passed.
func OverdueFeeTotal(fees []domain.OutstandingFee, today time.Time) decimal.Decimal {
	return SumBy(fees, func(f domain.OutstandingFee) bool {
		return domain.IsOverdue(f.DueDate, f.Status.Settled(), today)
	}, feeAmount)
}

// PaidRevenueTrend buckets paid fees by the month they were paid.
func PaidRevenueTrend(fees []domain.OutstandingFee, now time.Time, months int) []Bucket {
	return MonthlyTrend(fees, now, months,
		func(f domain.OutstandingFee) bool { return f.Status == domain.FeeStatusPaid },
		paidAt, feeAmount)
}

// Fees paid before paid_at was tracked fall back to their creation time.
func paidAt(f domain.OutstandingFee) time.Time {
	if f.PaidAt != nil {
		return *f.PaidAt
	}
	return f.CreatedAt
}

// FilingCount counts filings of kind in status. An empty kind matches every kind.
func FilingCount(filings []domain.ReturnFiling, kind domain.FilingKind, status domain.FilingStatus) int {
	return Count(filings, func(r domain.ReturnFiling) bool {
		return (kind == "" || r.Kind == kind) && r.Status == status
	})
}

// OverdueFilingCount counts unsettled filings whose due date has passed.
func OverdueFilingCount(filings []domain.ReturnFiling, today time.Time) int {
	return Count(filings, func(r domain.ReturnFiling) bool {
		return domain.IsOverdue(r.DueDate, r.Status.Settled(), today)
	})
}

// FilingsByStatus counts filings of kind per status.
func FilingsByStatus(filings []domain.ReturnFiling, kind domain.FilingKind) map[domain.FilingStatus]int {
	scoped := filings
	if kind != "" {
		scoped = make([]domain.ReturnFiling, 0, len(filings))
		for _, r := range filings {
			if r.Kind == kind {
				scoped = append(scoped, r)
			}
		}
	}
	return CountBy(scoped, func(r domain.ReturnFiling) domain.FilingStatus { return r.Status })
}

// ClientsByType counts clients per client type.
func ClientsByType(clients []domain.Client) []Point {
	return Series(CountBy(clients, func(c domain.Client) domain.ClientType { return c.ClientType }))
}

// ActiveEmployeeCount counts employees in the Active status.
func ActiveEmployeeCount(employees []domain.Employee) int {
	return Count(employees, func(e domain.Employee) bool { return e.Status == domain.EmployeeStatusActive })
}

// DepartmentCount counts distinct non-empty departments.
func DepartmentCount(employees []domain.Employee) int {
	return DistinctCount(employees, func(e domain.Employee) string { return e.Department })
}

// PayrollTotals returns the gross and net totals of entries.
func PayrollTotals(entries []domain.PayrollEntry) (gross, net decimal.Decimal) {
	gross = SumBy(entries, nil, func(p domain.PayrollEntry) decimal.Decimal { return p.Gross() })
	net = SumBy(entries, nil, func(p domain.PayrollEntry) decimal.Decimal { return p.NetSalary })
	return gross, net
}

// StockValue sums unit price times stock across items.
func StockValue(items []domain.InventoryItem) decimal.Decimal {
	return SumBy(items, nil, func(i domain.InventoryItem) decimal.Decimal { return i.StockValue() })
}

// ItemsByStockStatus counts items per stock status.
func ItemsByStockStatus(items []domain.InventoryItem) map[domain.StockStatus]int {
	return CountBy(items, func(i domain.InventoryItem) domain.StockStatus { return i.StockStatus })
}

// OverdueReminderCount counts active reminders dated before today.
func OverdueReminderCount(reminders []domain.Reminder, today time.Time) int {
	return Count(reminders, func(r domain.Reminder) bool {
		return r.Status == domain.ReminderStatusActive && domain.IsOverdue(&r.ReminderDate, false, today)
	})
}
