// Package export renders report tables as CSV or XLSX and reads
// spreadsheet imports.
package export

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"taxdesk/internal/domain"
)

// Table is a header row plus data rows, all pre-formatted as text.
type Table struct {
	Columns []string
	Rows    [][]string
}

var feeColumns = []string{
	"Invoice Number",
	"Client",
	"Service",
	"Amount",
	"Due Date",
	"Status",
	"Overdue",
	"Paid At",
	"Created At",
}

// FeeTable lays out fees one per row. names maps client ids to display names.
func FeeTable(fees []domain.OutstandingFee, names map[uuid.UUID]string) Table {
	t := Table{Columns: feeColumns, Rows: make([][]string, 0, len(fees))}
	for i := range fees {
		f := &fees[i]
		t.Rows = append(t.Rows, []string{
			f.InvoiceNumber,
			names[f.ClientID],
			f.ServiceType,
			formatAmount(f.Amount),
			formatDate(f.DueDate),
			string(f.Status),
			formatBool(f.Overdue),
			formatTime(f.PaidAt),
			f.CreatedAt.Format(time.RFC3339),
		})
	}
	return t
}

var filingColumns = []string{
	"Client",
	"Kind",
	"Form",
	"Period",
	"Sub Period",
	"Due Date",
	"Filing Date",
	"Status",
	"Overdue",
	"Acknowledgment",
	"Tax Amount",
}

// FilingTable lays out return filings one per row.
func FilingTable(filings []domain.ReturnFiling, names map[uuid.UUID]string) Table {
	t := Table{Columns: filingColumns, Rows: make([][]string, 0, len(filings))}
	for i := range filings {
		r := &filings[i]
		t.Rows = append(t.Rows, []string{
			names[r.ClientID],
			string(r.Kind),
			r.FormType,
			r.Period,
			r.SubPeriod,
			formatDate(r.DueDate),
			formatDate(r.FilingDate),
			string(r.Status),
			formatBool(r.Overdue),
			r.AcknowledgmentNumber,
			formatAmount(r.TaxAmount),
		})
	}
	return t
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
