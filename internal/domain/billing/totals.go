package billing

import (
	"github.com/shopspring/decimal"

	"github.com/mkrishnan/retailbill-api/internal/domain/enum"
)

// InvoiceTotals is derived from line items, tax config and advance; it is
// recomputed from scratch on every mutation and never stored independently
// of its inputs.
type InvoiceTotals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	BalanceAmount decimal.Decimal `json:"balance_amount"`
}

// Aggregate computes invoice-level totals. Tax is applied once over the
// aggregate taxable amount, not summed from independently taxed rows.
// The balance is grandTotal - advance and is not clamped at zero.
func Aggregate(items []LineItem, cfg TaxConfig, advanceAmount decimal.Decimal) (InvoiceTotals, error) {
	if len(items) == 0 {
		return InvoiceTotals{}, newValidationError("items", "invoice must have at least one line item")
	}
	if err := cfg.Validate(); err != nil {
		return InvoiceTotals{}, err
	}
	if advanceAmount.IsNegative() {
		return InvoiceTotals{}, newValidationError("advance_amount", "must not be negative")
	}

	subtotal := decimal.Zero
	totalDiscount := decimal.Zero
	for i, item := range items {
		row, err := item.ComputeRow()
		if err != nil {
			if verr, ok := err.(*ValidationError); ok {
				verr.Line = i
			}
			return InvoiceTotals{}, err
		}
		subtotal = subtotal.Add(row.Subtotal)
		totalDiscount = totalDiscount.Add(row.DiscountAmount)
	}

	taxableAmount := subtotal.Sub(totalDiscount)
	tax := ApplyForward(taxableAmount, cfg)
	grandTotal := tax.TaxInclusiveAmount

	return InvoiceTotals{
		Subtotal:      subtotal,
		TotalDiscount: totalDiscount,
		TaxableAmount: taxableAmount,
		CGSTAmount:    tax.CGSTAmount,
		SGSTAmount:    tax.SGSTAmount,
		GrandTotal:    grandTotal,
		BalanceAmount: grandTotal.Sub(advanceAmount),
	}, nil
}

// PaymentState is the consistent outcome of exactly one payment mutation.
// Status and AdvanceAmount never disagree with the rule that produced them.
type PaymentState struct {
	Status        enum.PaymentStatus `json:"status"`
	AdvanceAmount decimal.Decimal    `json:"advance_amount"`
	BalanceAmount decimal.Decimal    `json:"balance_amount"`
}

// ApplyAdvance derives the payment state after the advance amount is
// edited: paid when the advance covers the grand total, unpaid otherwise.
func ApplyAdvance(grandTotal, advanceAmount decimal.Decimal) PaymentState {
	status := enum.PaymentStatusUnpaid
	if advanceAmount.GreaterThanOrEqual(grandTotal) {
		status = enum.PaymentStatusPaid
	}
	return PaymentState{
		Status:        status,
		AdvanceAmount: advanceAmount,
		BalanceAmount: grandTotal.Sub(advanceAmount),
	}
}

// MarkPaid is the explicit status toggle to paid: the advance is forced to
// the grand total and the balance to zero.
func MarkPaid(grandTotal decimal.Decimal) PaymentState {
	return PaymentState{
		Status:        enum.PaymentStatusPaid,
		AdvanceAmount: grandTotal,
		BalanceAmount: decimal.Zero,
	}
}

// MarkUnpaid is the explicit status toggle to unpaid: the advance is
// forced to zero and the balance to the grand total.
func MarkUnpaid(grandTotal decimal.Decimal) PaymentState {
	return PaymentState{
		Status:        enum.PaymentStatusUnpaid,
		AdvanceAmount: decimal.Zero,
		BalanceAmount: grandTotal,
	}
}
