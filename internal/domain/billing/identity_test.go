package billing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	no := GenerateInvoiceNumber()
	if !strings.HasPrefix(no, "INV-") {
		t.Fatalf("GenerateInvoiceNumber() = %q, want INV- prefix", no)
	}
	digits := strings.TrimPrefix(no, "INV-")
	if len(digits) != 6 {
		t.Fatalf("suffix %q has %d digits, want 6", digits, len(digits))
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			t.Fatalf("suffix %q contains non-digit %q", digits, r)
		}
	}
}

func TestReconcileForEdit(t *testing.T) {
	cfg := bothGST("9")

	// Persist two rows produced under cfg, then reverse them.
	items := twoLineItems()
	persisted := make([]PersistedLineItem, 0, len(items))
	for _, item := range items {
		row, err := item.ComputeRow()
		if err != nil {
			t.Fatalf("ComputeRow() error = %v", err)
		}
		price := ApplyForward(row.TaxableAmount, cfg).TaxInclusiveAmount
		persisted = append(persisted, PersistedLineItem{
			ItemName: item.Name,
			Quantity: item.Quantity,
			Rate:     item.UnitPrice,
			Discount: item.DiscountPercent,
			Price:    price,
			RowTotal: price,
		})
	}

	got, errs := ReconcileForEdit(persisted, cfg)
	if len(errs) != 0 {
		t.Fatalf("ReconcileForEdit() errs = %v, want none", errs)
	}
	if len(got) != len(items) {
		t.Fatalf("ReconcileForEdit() returned %d items, want %d", len(got), len(items))
	}
	for i, item := range items {
		if got[i].Name != item.Name {
			t.Errorf("item %d Name = %q, want %q", i, got[i].Name, item.Name)
		}
		if got[i].Quantity != item.Quantity {
			t.Errorf("item %d Quantity = %d, want %d", i, got[i].Quantity, item.Quantity)
		}
		if !decClose(got[i].UnitPrice, item.UnitPrice) {
			t.Errorf("item %d UnitPrice = %s, want %s within 0.01", i, got[i].UnitPrice, item.UnitPrice)
		}
	}
}

func TestReconcileForEdit_FailedLineFallsBackToZero(t *testing.T) {
	persisted := []PersistedLineItem{
		{ItemName: "good", Quantity: 2, Discount: dec("0"), Price: dec("236")},
		{ItemName: "dead", Quantity: 2, Discount: dec("100"), Price: dec("118")},
		{ItemName: "also good", Quantity: 1, Discount: dec("0"), Price: dec("118")},
	}

	got, errs := ReconcileForEdit(persisted, bothGST("9"))
	if len(got) != 3 {
		t.Fatalf("ReconcileForEdit() returned %d items, want 3", len(got))
	}
	if len(errs) != 1 {
		t.Fatalf("ReconcileForEdit() errs = %v, want exactly 1", errs)
	}

	cerr, ok := errs[0].(*ComputationError)
	if !ok {
		t.Fatalf("errs[0] = %v, want *ComputationError", errs[0])
	}
	if cerr.Line != 1 {
		t.Errorf("Line = %d, want 1", cerr.Line)
	}
	if !got[1].UnitPrice.Equal(decimal.Zero) {
		t.Errorf("failed line UnitPrice = %s, want 0", got[1].UnitPrice)
	}
	if !decClose(got[0].UnitPrice, dec("100")) {
		t.Errorf("good line UnitPrice = %s, want 100", got[0].UnitPrice)
	}
	if !decClose(got[2].UnitPrice, dec("100")) {
		t.Errorf("good line UnitPrice = %s, want 100", got[2].UnitPrice)
	}
}
