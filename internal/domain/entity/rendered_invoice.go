package entity

import (
	"github.com/shopspring/decimal"

	"github.com/mkrishnan/retailbill-api/internal/domain/enum"
)

// CompanyBlock is the business header rendered at the top of an invoice.
type CompanyBlock struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	GST     string `json:"gst,omitempty"`
	Brands  string `json:"brands,omitempty"`
	LogoRef string `json:"logo_ref,omitempty"`
}

// CustomerBlock is the bill-to block on a rendered invoice.
type CustomerBlock struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	GST     string `json:"gst,omitempty"`
	Address string `json:"address,omitempty"`
}

// RenderedRow is one numbered line on a rendered invoice. RowTotal is the
// tax-inclusive display total for the row.
type RenderedRow struct {
	Serial          int             `json:"serial"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	RowTotal        decimal.Decimal `json:"row_total"`
}

// RenderedTotals is the aggregate block. CGST/SGST lines appear only when
// their flag was enabled on the invoice.
type RenderedTotals struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	ShowCGST      bool            `json:"show_cgst"`
	CGSTRate      decimal.Decimal `json:"cgst_rate"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	ShowSGST      bool            `json:"show_sgst"`
	SGSTRate      decimal.Decimal `json:"sgst_rate"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	AdvancePaid   decimal.Decimal `json:"advance_paid"`
	BalanceAmount decimal.Decimal `json:"balance_amount"`
}

// RenderedInvoice is an immutable view model of a fully computed invoice.
// It is NOT a database entity. Every downstream output (print HTML,
// WhatsApp text, thermal receipt, on-screen preview) is built from this
// one structure so all surfaces show the same numbers.
type RenderedInvoice struct {
	InvoiceNumber string             `json:"invoice_number"`
	InvoiceDate   string             `json:"invoice_date"`
	Company       CompanyBlock       `json:"company"`
	Customer      CustomerBlock      `json:"customer"`
	Rows          []RenderedRow      `json:"rows"`
	Totals        RenderedTotals     `json:"totals"`
	AmountInWords string             `json:"amount_in_words"`
	Salesperson   string             `json:"salesperson"`
	PaymentMethod string             `json:"payment_method"`
	PaymentStatus enum.PaymentStatus `json:"payment_status"`
}
