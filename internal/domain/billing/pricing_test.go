package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decClose reports whether a and b agree within the 0.01 rounding epsilon.
func decClose(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(dec("0.01"))
}

func TestComputeRow(t *testing.T) {
	tests := []struct {
		name         string
		item         LineItem
		wantSubtotal string
		wantDiscount string
		wantTaxable  string
	}{
		{
			name:         "no discount",
			item:         LineItem{Name: "Soap", Quantity: 2, UnitPrice: dec("100")},
			wantSubtotal: "200",
			wantDiscount: "0",
			wantTaxable:  "200",
		},
		{
			name:         "ten percent discount",
			item:         LineItem{Name: "Shampoo", Quantity: 1, UnitPrice: dec("200"), DiscountPercent: dec("10")},
			wantSubtotal: "200",
			wantDiscount: "20",
			wantTaxable:  "180",
		},
		{
			name:         "full discount",
			item:         LineItem{Name: "Sample", Quantity: 3, UnitPrice: dec("50"), DiscountPercent: dec("100")},
			wantSubtotal: "150",
			wantDiscount: "150",
			wantTaxable:  "0",
		},
		{
			name:         "fractional price",
			item:         LineItem{Name: "Thread", Quantity: 3, UnitPrice: dec("123.45"), DiscountPercent: dec("12")},
			wantSubtotal: "370.35",
			wantDiscount: "44.442",
			wantTaxable:  "325.908",
		},
		{
			name:         "zero price",
			item:         LineItem{Name: "Freebie", Quantity: 1, UnitPrice: dec("0")},
			wantSubtotal: "0",
			wantDiscount: "0",
			wantTaxable:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.item.ComputeRow()
			if err != nil {
				t.Fatalf("ComputeRow() error = %v", err)
			}
			if !got.Subtotal.Equal(dec(tt.wantSubtotal)) {
				t.Errorf("Subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			}
			if !got.DiscountAmount.Equal(dec(tt.wantDiscount)) {
				t.Errorf("DiscountAmount = %s, want %s", got.DiscountAmount, tt.wantDiscount)
			}
			if !got.TaxableAmount.Equal(dec(tt.wantTaxable)) {
				t.Errorf("TaxableAmount = %s, want %s", got.TaxableAmount, tt.wantTaxable)
			}
			if got.TaxableAmount.IsNegative() {
				t.Errorf("TaxableAmount = %s, must never be negative", got.TaxableAmount)
			}
		})
	}
}

func TestComputeRow_Validation(t *testing.T) {
	tests := []struct {
		name      string
		item      LineItem
		wantField string
	}{
		{"zero quantity", LineItem{Name: "X", Quantity: 0, UnitPrice: dec("10")}, "quantity"},
		{"negative quantity", LineItem{Name: "X", Quantity: -2, UnitPrice: dec("10")}, "quantity"},
		{"negative price", LineItem{Name: "X", Quantity: 1, UnitPrice: dec("-1")}, "unit_price"},
		{"discount above 100", LineItem{Name: "X", Quantity: 1, UnitPrice: dec("10"), DiscountPercent: dec("101")}, "discount_percent"},
		{"negative discount", LineItem{Name: "X", Quantity: 1, UnitPrice: dec("10"), DiscountPercent: dec("-5")}, "discount_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.item.ComputeRow()
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ComputeRow() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}
