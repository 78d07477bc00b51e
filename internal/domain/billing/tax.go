package billing

import "github.com/shopspring/decimal"

// maxGSTRate is the business cap on each of CGST and SGST.
var maxGSTRate = decimal.NewFromInt(9)

// TaxConfig is the invoice-wide CGST/SGST configuration. A disabled
// component contributes zero regardless of its rate.
type TaxConfig struct {
	CGSTEnabled bool            `json:"cgst_enabled"`
	SGSTEnabled bool            `json:"sgst_enabled"`
	CGSTRate    decimal.Decimal `json:"cgst_rate"`
	SGSTRate    decimal.Decimal `json:"sgst_rate"`
}

// Validate checks that enabled rates are within the 0-9 business bounds.
func (cfg TaxConfig) Validate() error {
	if cfg.CGSTEnabled && (cfg.CGSTRate.IsNegative() || cfg.CGSTRate.GreaterThan(maxGSTRate)) {
		return newValidationError("cgst_rate", "must be between 0 and 9")
	}
	if cfg.SGSTEnabled && (cfg.SGSTRate.IsNegative() || cfg.SGSTRate.GreaterThan(maxGSTRate)) {
		return newValidationError("sgst_rate", "must be between 0 and 9")
	}
	return nil
}

// CombinedRate returns the sum of the enabled tax rates.
func (cfg TaxConfig) CombinedRate() decimal.Decimal {
	rate := decimal.Zero
	if cfg.CGSTEnabled {
		rate = rate.Add(cfg.CGSTRate)
	}
	if cfg.SGSTEnabled {
		rate = rate.Add(cfg.SGSTRate)
	}
	return rate
}

// TaxBreakdown is the result of applying forward tax to a taxable amount.
type TaxBreakdown struct {
	CGSTAmount         decimal.Decimal `json:"cgst_amount"`
	SGSTAmount         decimal.Decimal `json:"sgst_amount"`
	TaxInclusiveAmount decimal.Decimal `json:"tax_inclusive_amount"`
}

// ApplyForward applies the configured CGST/SGST to a taxable amount.
func ApplyForward(taxableAmount decimal.Decimal, cfg TaxConfig) TaxBreakdown {
	cgst := decimal.Zero
	if cfg.CGSTEnabled {
		cgst = taxableAmount.Mul(cfg.CGSTRate).Div(hundred)
	}
	sgst := decimal.Zero
	if cfg.SGSTEnabled {
		sgst = taxableAmount.Mul(cfg.SGSTRate).Div(hundred)
	}
	return TaxBreakdown{
		CGSTAmount:         cgst,
		SGSTAmount:         sgst,
		TaxInclusiveAmount: taxableAmount.Add(cgst).Add(sgst),
	}
}

// ReverseDerive reconstructs the pre-tax unit price from a persisted
// tax-inclusive row total:
//
//	unitPrice = price / (qty * (1 - discount/100) * (1 + combinedRate/100))
//
// The inverse is exact only when cfg matches the configuration in effect
// when the price was produced; under a changed configuration the result
// is the documented approximation.
func ReverseDerive(taxInclusivePrice decimal.Decimal, quantity int, discountPercent decimal.Decimal, cfg TaxConfig) (decimal.Decimal, error) {
	discountFactor := one.Sub(discountPercent.Div(hundred))
	taxFactor := one.Add(cfg.CombinedRate().Div(hundred))
	denominator := decimal.NewFromInt(int64(quantity)).Mul(discountFactor).Mul(taxFactor)

	if !denominator.IsPositive() {
		return decimal.Zero, &ComputationError{
			Line:    -1,
			Message: "cannot derive unit price: zero or negative denominator",
		}
	}
	return taxInclusivePrice.Div(denominator), nil
}
