package domain

import (
	"math"
	"time"
)

// DeriveStockStatus labels an item from its stock levels. Zero stock is
// reported as Out of Stock even when the minimum is also zero.
func DeriveStockStatus(current, minimum int) StockStatus {
	switch {
	case current <= 0:
		return StockStatusOut
	case current < minimum:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// IsOverdue reports whether due lies strictly before the calendar day of today
// and the record is not settled. A nil due date is never overdue.
func IsOverdue(due *time.Time, settled bool, today time.Time) bool {
	if due == nil || settled {
		return false
	}
	return StartOfDay(*due).Before(StartOfDay(today))
}

// ChecklistProgress returns round(100*received/required), or 0 when nothing is required.
func ChecklistProgress(received, required int) int {
	if required <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(received) / float64(required)))
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// RefreshOverdue sets the derived Overdue flag relative to today.
func (f *OutstandingFee) RefreshOverdue(today time.Time) {
	f.Overdue = IsOverdue(f.DueDate, f.Status.Settled(), today)
}

// RefreshOverdue sets the derived Overdue flag relative to today.
func (r *ReturnFiling) RefreshOverdue(today time.Time) {
	r.Overdue = IsOverdue(r.DueDate, r.Status.Settled(), today)
}
