package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
	"github.com/mkrishnan/retailbill-api/internal/domain/enum"
)

func renderInput(t *testing.T, cfg TaxConfig) DocumentInput {
	t.Helper()
	items := twoLineItems()
	totals, err := Aggregate(items, cfg, decimal.Zero)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	return DocumentInput{
		InvoiceNumber: "INV-123456",
		InvoiceDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Items:         items,
		Config:        cfg,
		Totals:        totals,
		AdvanceAmount: decimal.Zero,
		PaymentStatus: enum.PaymentStatusUnpaid,
		Company: entity.CompanyBlock{
			Name: "Sharma Traders", Address: "12 MG Road", Phone: "+91 98450 00000",
			GST: "29ABCDE1234F1Z5", Brands: "Cottons, Silks",
		},
		Customer:    entity.CustomerBlock{Name: "Ravi", Phone: "+91 90000 00000"},
		Salesperson: "Meena",
	}
}

func TestRenderDocument(t *testing.T) {
	doc, err := RenderDocument(renderInput(t, bothGST("9")))
	if err != nil {
		t.Fatalf("RenderDocument() error = %v", err)
	}

	if doc.InvoiceNumber != "INV-123456" {
		t.Errorf("InvoiceNumber = %q", doc.InvoiceNumber)
	}
	if doc.InvoiceDate != "14/03/2026" {
		t.Errorf("InvoiceDate = %q, want 14/03/2026", doc.InvoiceDate)
	}
	if doc.Company.Name != "Sharma Traders" {
		t.Errorf("Company.Name = %q", doc.Company.Name)
	}
	if doc.Salesperson != "Meena" {
		t.Errorf("Salesperson = %q", doc.Salesperson)
	}
	if doc.PaymentMethod != PaymentMethodLabel {
		t.Errorf("PaymentMethod = %q, want %q", doc.PaymentMethod, PaymentMethodLabel)
	}
	if doc.PaymentStatus != enum.PaymentStatusUnpaid {
		t.Errorf("PaymentStatus = %v", doc.PaymentStatus)
	}

	if len(doc.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(doc.Rows))
	}
	// Rows are serial-numbered from 1 and carry tax-inclusive display totals:
	// 200 * 1.18 = 236, 180 * 1.18 = 212.40.
	if doc.Rows[0].Serial != 1 || doc.Rows[1].Serial != 2 {
		t.Errorf("serials = %d, %d, want 1, 2", doc.Rows[0].Serial, doc.Rows[1].Serial)
	}
	if !doc.Rows[0].RowTotal.Equal(dec("236")) {
		t.Errorf("Rows[0].RowTotal = %s, want 236", doc.Rows[0].RowTotal)
	}
	if !doc.Rows[1].RowTotal.Equal(dec("212.4")) {
		t.Errorf("Rows[1].RowTotal = %s, want 212.4", doc.Rows[1].RowTotal)
	}

	if !doc.Totals.GrandTotal.Equal(dec("448.4")) {
		t.Errorf("GrandTotal = %s, want 448.4", doc.Totals.GrandTotal)
	}
	if !doc.Totals.ShowCGST || !doc.Totals.ShowSGST {
		t.Error("CGST/SGST lines should be shown when enabled")
	}
	if doc.AmountInWords != "FOUR HUNDRED FORTY EIGHT RUPEES ONLY" {
		t.Errorf("AmountInWords = %q", doc.AmountInWords)
	}
}

func TestRenderDocument_UniformRatesMatchPersistedRowSum(t *testing.T) {
	// With a uniform tax config the sum of per-row display totals agrees
	// with the invoice grand total within rounding.
	doc, err := RenderDocument(renderInput(t, bothGST("9")))
	if err != nil {
		t.Fatalf("RenderDocument() error = %v", err)
	}
	sum := decimal.Zero
	for _, row := range doc.Rows {
		sum = sum.Add(row.RowTotal)
	}
	if !decClose(sum, doc.Totals.GrandTotal) {
		t.Errorf("row sum = %s, grand total = %s, want agreement within 0.01", sum, doc.Totals.GrandTotal)
	}
}

func TestRenderDocument_DisabledTaxHidesLines(t *testing.T) {
	doc, err := RenderDocument(renderInput(t, TaxConfig{}))
	if err != nil {
		t.Fatalf("RenderDocument() error = %v", err)
	}
	if doc.Totals.ShowCGST || doc.Totals.ShowSGST {
		t.Error("tax lines must be hidden when disabled")
	}
	if !doc.Totals.GrandTotal.Equal(dec("380")) {
		t.Errorf("GrandTotal = %s, want 380", doc.Totals.GrandTotal)
	}
}

func TestRenderDocument_DoesNotMutateInputs(t *testing.T) {
	in := renderInput(t, bothGST("9"))
	qtyBefore := in.Items[0].Quantity
	priceBefore := in.Items[0].UnitPrice

	if _, err := RenderDocument(in); err != nil {
		t.Fatalf("RenderDocument() error = %v", err)
	}
	if in.Items[0].Quantity != qtyBefore || !in.Items[0].UnitPrice.Equal(priceBefore) {
		t.Error("RenderDocument mutated its input items")
	}
}
