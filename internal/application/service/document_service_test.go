package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
	"github.com/mkrishnan/retailbill-api/internal/domain/enum"
)

func sampleDocument() *entity.RenderedInvoice {
	return &entity.RenderedInvoice{
		InvoiceNumber: "INV-123456",
		InvoiceDate:   "15/08/2026",
		Company: entity.CompanyBlock{
			Name:    "Sri Lakshmi Textiles",
			Address: "12 Bazaar St, Madurai",
			Phone:   "0452-2345678",
			GST:     "33AAAAA0000A1Z5",
		},
		Customer: entity.CustomerBlock{
			Name:  "Meena",
			Phone: "98765 43210",
		},
		Rows: []entity.RenderedRow{
			{Serial: 1, Name: "Silk Saree", Quantity: 2, Rate: decimal.NewFromInt(100), DiscountPercent: decimal.NewFromInt(10), RowTotal: decimal.RequireFromString("212.40")},
			{Serial: 2, Name: "Blouse", Quantity: 1, Rate: decimal.NewFromInt(200), RowTotal: decimal.NewFromInt(236)},
		},
		Totals: entity.RenderedTotals{
			TaxableAmount: decimal.NewFromInt(380),
			TotalDiscount: decimal.NewFromInt(20),
			ShowCGST:      true,
			CGSTRate:      decimal.NewFromInt(9),
			CGSTAmount:    decimal.RequireFromString("34.20"),
			ShowSGST:      true,
			SGSTRate:      decimal.NewFromInt(9),
			SGSTAmount:    decimal.RequireFromString("34.20"),
			GrandTotal:    decimal.RequireFromString("448.40"),
			AdvancePaid:   decimal.NewFromInt(100),
			BalanceAmount: decimal.RequireFromString("348.40"),
		},
		AmountInWords: "FOUR HUNDRED FORTY EIGHT RUPEES ONLY",
		Salesperson:   "Ravi",
		PaymentMethod: "CASH",
		PaymentStatus: enum.PaymentStatusUnpaid,
	}
}

func TestFormatReceipt(t *testing.T) {
	s := &DocumentService{charWidth: 32}
	data := s.FormatReceipt(sampleDocument())

	out := string(data)
	for _, want := range []string{
		"Sri Lakshmi Textiles",
		"INV-123456",
		"15/08/2026",
		"Ravi",
		"Meena",
		"CASH",
		"2x Silk Saree",
		"212.40",
		"CGST @9%:",
		"SGST @9%:",
		"448.40",
		"Advance:",
		"348.40",
		"UNPAID",
		"RUPEES ONLY",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q", want)
		}
	}

	// ESC @ initialize, then a cut at the end.
	if !bytes.HasPrefix(data, []byte{0x1B, '@'}) {
		t.Error("receipt does not start with printer init")
	}
	if !bytes.Contains(data, []byte{0x1D, 'V', 0x01}) {
		t.Error("receipt missing partial cut command")
	}
}

func TestInvoiceTemplate(t *testing.T) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, sampleDocument()); err != nil {
		t.Fatalf("template execution failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"Invoice INV-123456",
		"Sri Lakshmi Textiles",
		"GSTIN: 33AAAAA0000A1Z5",
		"Meena",
		"Silk Saree",
		"CGST @ 9%",
		"SGST @ 9%",
		"448.4",
		"FOUR HUNDRED FORTY EIGHT RUPEES ONLY",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("print HTML missing %q", want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"98765 43210", "919876543210"},
		{"+91 98765-43210", "919876543210"},
		{"0452-2345678", "04522345678"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizePhone(tt.in); got != tt.want {
			t.Errorf("normalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("FOUR HUNDRED FORTY EIGHT RUPEES ONLY", 20)
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %v", lines)
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(lines, " ") != "FOUR HUNDRED FORTY EIGHT RUPEES ONLY" {
		t.Errorf("wrapping lost content: %v", lines)
	}

	if got := wrapText("", 20); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
