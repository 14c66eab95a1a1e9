// Package currency renders amounts for display.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Code is the currency every amount in the system is held in.
const Code = money.INR

// FormatINR renders amount as rupees with two decimals and thousands
// separators, e.g. ₹1,500.00. Amounts are rounded half away from zero.
func FormatINR(amount decimal.Decimal) string {
	cur := money.New(0, Code).Currency()
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// ToMoney converts a decimal amount into a go-money value in minor units.
func ToMoney(amount decimal.Decimal) *money.Money {
	cur := money.New(0, Code).Currency()
	return money.New(amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction)).IntPart(), Code)
}
