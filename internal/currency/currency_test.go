package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"taxdesk/internal/currency"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"1500", "₹1,500.00"},
		{"1234567.891", "₹1,234,567.89"},
		{"99.995", "₹100.00"},
		{"0.5", "₹0.50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.FormatINR(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestToMoney(t *testing.T) {
	m := currency.ToMoney(decimal.RequireFromString("250.75"))

	assert.Equal(t, int64(25075), m.Amount())
	assert.Equal(t, "INR", m.Currency().Code)
}
