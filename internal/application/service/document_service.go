package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mkrishnan/retailbill-api/internal/domain/billing"
	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
	"github.com/mkrishnan/retailbill-api/internal/domain/repository"
	"github.com/mkrishnan/retailbill-api/pkg/apperror"
	"github.com/mkrishnan/retailbill-api/pkg/printer"
)

// DocumentService builds invoice documents: the on-screen preview, the
// printable HTML page, the WhatsApp share text and the thermal receipt.
// All surfaces render from the same RenderedInvoice so the numbers never
// disagree.
type DocumentService struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	printer     printer.Printer
	printerType string
	charWidth   int
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	p printer.Printer,
	printerType string,
	charWidth int,
) *DocumentService {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &DocumentService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		printer:     p,
		printerType: printerType,
		charWidth:   charWidth,
	}
}

// BuildDocument renders the invoice view model from the stored invoice
// and the company's current tax configuration.
func (s *DocumentService) BuildDocument(ctx context.Context, invoiceID uuid.UUID) (*entity.RenderedInvoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company profile")
	}

	cfg := billing.TaxConfig{
		CGSTEnabled: company.CGSTEnabled,
		SGSTEnabled: company.SGSTEnabled,
		CGSTRate:    company.CGSTRate,
		SGSTRate:    company.SGSTRate,
	}

	items := make([]billing.LineItem, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = billing.LineItem{
			Name:            item.ItemName,
			Quantity:        item.Quantity,
			UnitPrice:       item.Rate,
			DiscountPercent: item.Discount,
		}
	}

	totals := billing.InvoiceTotals{
		Subtotal:      invoice.SubTotal,
		TotalDiscount: invoice.TotalDiscount,
		TaxableAmount: invoice.SubTotal.Sub(invoice.TotalDiscount),
		CGSTAmount:    invoice.CGSTAmount,
		SGSTAmount:    invoice.SGSTAmount,
		GrandTotal:    invoice.TotalAmount,
		BalanceAmount: invoice.BalanceAmount,
	}

	doc, err := billing.RenderDocument(billing.DocumentInput{
		InvoiceNumber: invoice.InvoiceNo,
		InvoiceDate:   invoice.InvoiceDate,
		Items:         items,
		Config:        cfg,
		Totals:        totals,
		AdvanceAmount: invoice.AdvanceAmount,
		PaymentStatus: invoice.PaymentStatus,
		Company:       company.Block(),
		Customer:      invoice.Customer.Block(),
		Salesperson:   invoice.Employee.Name,
	})
	if err != nil {
		return nil, mapBillingError(err)
	}
	return doc, nil
}

// PrintHTML renders the printable invoice page.
func (s *DocumentService) PrintHTML(ctx context.Context, invoiceID uuid.UUID) (string, error) {
	doc, err := s.BuildDocument(ctx, invoiceID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render invoice template: %w", err)
	}
	return buf.String(), nil
}

// WhatsAppShare is a ready-to-send WhatsApp message for an invoice.
type WhatsAppShare struct {
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// WhatsAppText builds the plain-text invoice summary and a wa.me deep
// link. The link targets the customer's phone when one is on file.
func (s *DocumentService) WhatsAppText(ctx context.Context, invoiceID uuid.UUID) (*WhatsAppShare, error) {
	doc, err := s.BuildDocument(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", doc.Company.Name)
	fmt.Fprintf(&b, "Invoice %s | %s\n", doc.InvoiceNumber, doc.InvoiceDate)
	fmt.Fprintf(&b, "Customer: %s\n\n", doc.Customer.Name)
	for _, row := range doc.Rows {
		fmt.Fprintf(&b, "%d. %s x%d = Rs.%s\n", row.Serial, row.Name, row.Quantity, row.RowTotal.StringFixed(2))
	}
	b.WriteString("\n")
	if doc.Totals.ShowCGST {
		fmt.Fprintf(&b, "CGST @%s%%: Rs.%s\n", doc.Totals.CGSTRate.String(), doc.Totals.CGSTAmount.StringFixed(2))
	}
	if doc.Totals.ShowSGST {
		fmt.Fprintf(&b, "SGST @%s%%: Rs.%s\n", doc.Totals.SGSTRate.String(), doc.Totals.SGSTAmount.StringFixed(2))
	}
	fmt.Fprintf(&b, "*Total: Rs.%s*\n", doc.Totals.GrandTotal.StringFixed(2))
	if doc.Totals.AdvancePaid.IsPositive() {
		fmt.Fprintf(&b, "Advance: Rs.%s\n", doc.Totals.AdvancePaid.StringFixed(2))
		fmt.Fprintf(&b, "Balance: Rs.%s\n", doc.Totals.BalanceAmount.StringFixed(2))
	}
	fmt.Fprintf(&b, "%s\n", doc.AmountInWords)
	fmt.Fprintf(&b, "\nThank you for shopping with us!")

	message := b.String()
	share := &WhatsAppShare{
		Phone:   normalizePhone(doc.Customer.Phone),
		Message: message,
	}
	if share.Phone != "" {
		share.Link = fmt.Sprintf("https://wa.me/%s?text=%s", share.Phone, url.QueryEscape(message))
	} else {
		share.Link = fmt.Sprintf("https://wa.me/?text=%s", url.QueryEscape(message))
	}
	return share, nil
}

// PrintReceipt sends the thermal receipt to the configured printer and
// returns the rendered document so callers can show a preview even when
// no printer is attached.
func (s *DocumentService) PrintReceipt(ctx context.Context, invoiceID uuid.UUID) (*entity.RenderedInvoice, error) {
	doc, err := s.BuildDocument(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	data := s.FormatReceipt(doc)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (invoice %s): %v", invoiceID, err)
		return doc, fmt.Errorf("failed to print receipt: %w", err)
	}
	return doc, nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *DocumentService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// FormatReceipt converts a rendered invoice into ESC/POS bytes.
func (s *DocumentService) FormatReceipt(doc *entity.RenderedInvoice) []byte {
	d := printer.NewDocument(s.charWidth)

	// Header
	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(doc.Company.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if doc.Company.Address != "" {
		d.Text(doc.Company.Address)
	}
	if doc.Company.Phone != "" {
		d.Text(doc.Company.Phone)
	}
	if doc.Company.GST != "" {
		d.TextF("GSTIN: %s", doc.Company.GST)
	}

	d.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	d.KeyValue("Invoice:", doc.InvoiceNumber).
		KeyValue("Date:", doc.InvoiceDate)

	if doc.Salesperson != "" {
		d.KeyValue("Salesperson:", doc.Salesperson)
	}
	if doc.Customer.Name != "" {
		d.KeyValue("Customer:", doc.Customer.Name)
	}
	d.KeyValue("Payment:", doc.PaymentMethod)

	d.Separator('-')

	// Items
	for _, row := range doc.Rows {
		d.ItemLine(row.Quantity, row.Name, row.RowTotal.StringFixed(2))
		if row.DiscountPercent.IsPositive() {
			d.TextF("  @ %s less %s%%", row.Rate.StringFixed(2), row.DiscountPercent.String())
		} else if row.Quantity > 1 {
			d.TextF("  @ %s each", row.Rate.StringFixed(2))
		}
	}

	d.Separator('-')

	// Totals
	d.KeyValue("Taxable:", doc.Totals.TaxableAmount.StringFixed(2))
	if doc.Totals.ShowCGST {
		d.KeyValue(fmt.Sprintf("CGST @%s%%:", doc.Totals.CGSTRate.String()), doc.Totals.CGSTAmount.StringFixed(2))
	}
	if doc.Totals.ShowSGST {
		d.KeyValue(fmt.Sprintf("SGST @%s%%:", doc.Totals.SGSTRate.String()), doc.Totals.SGSTAmount.StringFixed(2))
	}
	d.SetBold(true).
		KeyValue("TOTAL:", doc.Totals.GrandTotal.StringFixed(2)).
		SetBold(false)

	if doc.Totals.AdvancePaid.IsPositive() {
		d.KeyValue("Advance:", doc.Totals.AdvancePaid.StringFixed(2))
		d.KeyValue("Balance:", doc.Totals.BalanceAmount.StringFixed(2))
	}
	d.KeyValue("Status:", doc.PaymentStatus.String())

	d.Separator('-')

	// Amount in words wraps across lines on narrow paper.
	for _, line := range wrapText(doc.AmountInWords, s.charWidth) {
		d.Text(line)
	}

	// Footer
	d.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	d.FeedLines(3).
		PartialCut()

	return d.Bytes()
}

// normalizePhone strips everything but digits so the number fits the
// wa.me URL format. Bare 10-digit numbers get the Indian country code.
func normalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.String()
	if len(n) == 10 {
		return "91" + n
	}
	return n
}

// wrapText splits s into lines no longer than width, breaking on spaces.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; font-size: 13px; margin: 24px; color: #111; }
  .header { text-align: center; margin-bottom: 12px; }
  .header h1 { margin: 0; font-size: 22px; }
  .header p { margin: 2px 0; }
  .meta, .totals { width: 100%; margin-top: 12px; }
  table.items { width: 100%; border-collapse: collapse; margin-top: 12px; }
  table.items th, table.items td { border: 1px solid #444; padding: 4px 6px; }
  table.items th { background: #eee; }
  td.num, th.num { text-align: right; }
  .totals td { padding: 2px 6px; }
  .totals .label { text-align: right; }
  .totals .value { text-align: right; width: 120px; }
  .grand { font-weight: bold; border-top: 1px solid #444; }
  .words { margin-top: 10px; font-style: italic; }
  .footer { margin-top: 24px; text-align: center; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<div class="header">
  <h1>{{.Company.Name}}</h1>
  {{if .Company.Brands}}<p>{{.Company.Brands}}</p>{{end}}
  {{if .Company.Address}}<p>{{.Company.Address}}</p>{{end}}
  {{if .Company.Phone}}<p>Phone: {{.Company.Phone}}</p>{{end}}
  {{if .Company.GST}}<p>GSTIN: {{.Company.GST}}</p>{{end}}
</div>
<table class="meta">
<tr>
  <td>
    <strong>Bill To:</strong><br>
    {{.Customer.Name}}<br>
    {{if .Customer.Address}}{{.Customer.Address}}<br>{{end}}
    {{if .Customer.Phone}}Phone: {{.Customer.Phone}}<br>{{end}}
    {{if .Customer.GST}}GSTIN: {{.Customer.GST}}{{end}}
  </td>
  <td style="text-align:right">
    <strong>Invoice No:</strong> {{.InvoiceNumber}}<br>
    <strong>Date:</strong> {{.InvoiceDate}}<br>
    <strong>Payment:</strong> {{.PaymentMethod}}<br>
    <strong>Status:</strong> {{.PaymentStatus}}
  </td>
</tr>
</table>
<table class="items">
<tr><th>#</th><th>Item</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Disc %</th><th class="num">Amount</th></tr>
{{range .Rows}}
<tr>
  <td>{{.Serial}}</td>
  <td>{{.Name}}</td>
  <td class="num">{{.Quantity}}</td>
  <td class="num">{{.Rate}}</td>
  <td class="num">{{.DiscountPercent}}</td>
  <td class="num">{{.RowTotal}}</td>
</tr>
{{end}}
</table>
<table class="totals">
<tr><td class="label">Discount</td><td class="value">{{.Totals.TotalDiscount}}</td></tr>
<tr><td class="label">Taxable Amount</td><td class="value">{{.Totals.TaxableAmount}}</td></tr>
{{if .Totals.ShowCGST}}<tr><td class="label">CGST @ {{.Totals.CGSTRate}}%</td><td class="value">{{.Totals.CGSTAmount}}</td></tr>{{end}}
{{if .Totals.ShowSGST}}<tr><td class="label">SGST @ {{.Totals.SGSTRate}}%</td><td class="value">{{.Totals.SGSTAmount}}</td></tr>{{end}}
<tr class="grand"><td class="label">Grand Total</td><td class="value">{{.Totals.GrandTotal}}</td></tr>
<tr><td class="label">Advance Paid</td><td class="value">{{.Totals.AdvancePaid}}</td></tr>
<tr><td class="label">Balance</td><td class="value">{{.Totals.BalanceAmount}}</td></tr>
</table>
<p class="words">{{.AmountInWords}}</p>
<div class="footer">
  {{if .Salesperson}}<p>Salesperson: {{.Salesperson}}</p>{{end}}
  <p>Thank you for your business!</p>
</div>
</body>
</html>
`))
