package billing

import "github.com/shopspring/decimal"

// RowAmounts holds the per-line amounts before tax.
type RowAmounts struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
}

// ComputeRow calculates subtotal, discount, and taxable amount for one
// line item. It validates the item and returns a ValidationError without
// partial results when any field is out of range.
func (item LineItem) ComputeRow() (RowAmounts, error) {
	if err := item.validate(); err != nil {
		return RowAmounts{}, err
	}

	subtotal := decimal.NewFromInt(int64(item.Quantity)).Mul(item.UnitPrice)
	discountAmount := subtotal.Mul(item.DiscountPercent).Div(hundred)

	return RowAmounts{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  subtotal.Sub(discountAmount),
	}, nil
}

func (item LineItem) validate() error {
	if item.Quantity < 1 {
		return newValidationError("quantity", "must be at least 1")
	}
	if item.UnitPrice.IsNegative() {
		return newValidationError("unit_price", "must not be negative")
	}
	if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(hundred) {
		return newValidationError("discount_percent", "must be between 0 and 100")
	}
	return nil
}
