package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// FormatPrice renders amount with exactly two decimals after symbol, e.g. $9.50.
func FormatPrice(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// FormatAdjustment renders a variant price delta as +$2.00 or -$1.50.
// A zero adjustment renders as an empty string.
func FormatAdjustment(symbol string, adjustment decimal.Decimal) string {
	switch adjustment.Sign() {
	case 1:
		return "+" + FormatPrice(symbol, adjustment)
	case -1:
		return "-" + FormatPrice(symbol, adjustment.Abs())
	default:
		return ""
	}
}

// Format renders m with the given symbol, falling back to the ISO code.
func (m Money) Format(symbol string) string {
	if symbol == "" {
		symbol = m.Currency.String() + " "
	}
	return FormatPrice(symbol, m.Amount)
}
