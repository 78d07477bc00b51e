// Package billing implements the invoice pricing, tax, and document
// derivation engine. Every function here is pure and synchronous: the
// calling surface recomputes totals after each mutation and the engine
// performs no I/O and keeps no state between calls.
//
// All arithmetic is done on shopspring decimals at full precision;
// values are rounded to 2 places only at the presentation/persistence
// boundary.
package billing

import "github.com/shopspring/decimal"

// LineItem is a single editable invoice row.
type LineItem struct {
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Round2 rounds a decimal to 2 places. Use only on final presented or
// persisted values, never on intermediates.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
