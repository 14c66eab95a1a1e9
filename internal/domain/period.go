package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// MonthLayout is the format of payroll months.
const MonthLayout = "2006-01"

// FinancialYear returns the April-March financial year containing t, e.g. "2024-2025".
func FinancialYear(t time.Time) string {
	y := t.Year()
	if t.Month() >= time.April {
		return fmt.Sprintf("%d-%d", y, y+1)
	}
	return fmt.Sprintf("%d-%d", y-1, y)
}

// AssessmentYear returns the assessment year following the financial year containing t.
func AssessmentYear(t time.Time) string {
	return FinancialYear(t.AddDate(1, 0, 0))
}

// ParseDate parses an optional YYYY-MM-DD string. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders an optional date as DD/MM/YYYY, or "" when nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
