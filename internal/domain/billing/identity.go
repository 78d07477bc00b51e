package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PersistedLineItem is the stored representation of an invoice row. Price
// is the tax-inclusive row total; Rate is the pre-tax unit price.
type PersistedLineItem struct {
	ItemName string          `json:"item_name"`
	Quantity int             `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Discount decimal.Decimal `json:"discount"`
	Price    decimal.Decimal `json:"price"`
	RowTotal decimal.Decimal `json:"row_total"`
}

// GenerateInvoiceNumber returns "INV-" plus the last six digits of the
// current millisecond timestamp. Two calls within the same millisecond
// window can collide; callers needing hard uniqueness must supply a
// stronger source.
func GenerateInvoiceNumber() string {
	return fmt.Sprintf("INV-%06d", time.Now().UnixMilli()%1000000)
}

// ReconcileForEdit converts persisted rows back into editable line items
// by reverse-deriving each pre-tax unit price under the current tax
// configuration. A row whose derivation fails is returned with a zero
// unit price and its error collected; reconciliation never aborts as a
// whole. The result is lossy when cfg differs from the configuration in
// effect at creation time.
func ReconcileForEdit(persisted []PersistedLineItem, cfg TaxConfig) ([]LineItem, []error) {
	items := make([]LineItem, 0, len(persisted))
	var errs []error

	for i, p := range persisted {
		unitPrice, err := ReverseDerive(p.Price, p.Quantity, p.Discount, cfg)
		if err != nil {
			if cerr, ok := err.(*ComputationError); ok {
				cerr.Line = i
			}
			errs = append(errs, err)
			unitPrice = decimal.Zero
		}
		items = append(items, LineItem{
			Name:            p.ItemName,
			Quantity:        p.Quantity,
			UnitPrice:       unitPrice,
			DiscountPercent: p.Discount,
		})
	}
	return items, errs
}
