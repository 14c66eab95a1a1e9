// Package msgtemplate fills communication templates with client and fee values.
package msgtemplate

import (
	"strings"

	"taxdesk/internal/currency"
	"taxdesk/internal/domain"
)

// Recognised placeholder tokens.
const (
	TokenClientName    = "{client_name}"
	TokenDueDate       = "{due_date}"
	TokenAmount        = "{amount}"
	TokenStatus        = "{status}"
	TokenInvoiceNumber = "{invoice_number}"
)

// Tokens lists every recognised token.
var Tokens = []string{TokenClientName, TokenDueDate, TokenAmount, TokenStatus, TokenInvoiceNumber}

// Values holds the already-stringified substitution values. Empty fields
// render as empty strings.
type Values struct {
	ClientName    string
	DueDate       string
	Amount        string
	Status        string
	InvoiceNumber string
}

// ValuesFor derives substitution values from a client and an optional fee.
func ValuesFor(client *domain.Client, fee *domain.OutstandingFee) Values {
	var v Values
	if client != nil {
		v.ClientName = client.Name
	}
	if fee != nil {
		v.DueDate = domain.FormatDate(fee.DueDate)
		v.Amount = currency.FormatINR(fee.Amount)
		v.Status = string(fee.Status)
		v.InvoiceNumber = fee.InvoiceNumber
	}
	return v
}

// Render replaces every recognised token in tmpl. Unrecognised brace
// sequences are left untouched.
func Render(tmpl string, v Values) string {
	r := strings.NewReplacer(
		TokenClientName, v.ClientName,
		TokenDueDate, v.DueDate,
		TokenAmount, v.Amount,
		TokenStatus, v.Status,
		TokenInvoiceNumber, v.InvoiceNumber,
	)
	return r.Replace(tmpl)
}
