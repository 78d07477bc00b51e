package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
	"github.com/mkrishnan/retailbill-api/internal/domain/enum"
)

// PaymentMethodLabel is the fixed label stamped on every document.
const PaymentMethodLabel = "CASH"

// DocumentInput carries everything a rendered invoice is derived from.
// Totals must have been produced by Aggregate over the same Items and
// Config; the renderer does not re-verify the relationship.
type DocumentInput struct {
	InvoiceNumber string
	InvoiceDate   time.Time
	Items         []LineItem
	Config        TaxConfig
	Totals        InvoiceTotals
	AdvanceAmount decimal.Decimal
	PaymentStatus enum.PaymentStatus
	Company       entity.CompanyBlock
	Customer      entity.CustomerBlock
	Salesperson   string
}

// RenderDocument builds the immutable invoice view model. Per-row display
// totals compose pricing and forward tax per row; aggregate numbers come
// from the supplied invoice-level totals. All values are rounded to 2
// places here, at the boundary.
func RenderDocument(in DocumentInput) (*entity.RenderedInvoice, error) {
	rows := make([]entity.RenderedRow, 0, len(in.Items))
	for i, item := range in.Items {
		amounts, err := item.ComputeRow()
		if err != nil {
			if verr, ok := err.(*ValidationError); ok {
				verr.Line = i
			}
			return nil, err
		}
		rowTax := ApplyForward(amounts.TaxableAmount, in.Config)
		rows = append(rows, entity.RenderedRow{
			Serial:          i + 1,
			Name:            item.Name,
			Quantity:        item.Quantity,
			Rate:            Round2(item.UnitPrice),
			DiscountPercent: item.DiscountPercent,
			RowTotal:        Round2(rowTax.TaxInclusiveAmount),
		})
	}

	return &entity.RenderedInvoice{
		InvoiceNumber: in.InvoiceNumber,
		InvoiceDate:   in.InvoiceDate.Format("02/01/2006"),
		Company:       in.Company,
		Customer:      in.Customer,
		Rows:          rows,
		Totals: entity.RenderedTotals{
			TaxableAmount: Round2(in.Totals.TaxableAmount),
			TotalDiscount: Round2(in.Totals.TotalDiscount),
			ShowCGST:      in.Config.CGSTEnabled,
			CGSTRate:      in.Config.CGSTRate,
			CGSTAmount:    Round2(in.Totals.CGSTAmount),
			ShowSGST:      in.Config.SGSTEnabled,
			SGSTRate:      in.Config.SGSTRate,
			SGSTAmount:    Round2(in.Totals.SGSTAmount),
			GrandTotal:    Round2(in.Totals.GrandTotal),
			AdvancePaid:   Round2(in.AdvanceAmount),
			BalanceAmount: Round2(in.Totals.BalanceAmount),
		},
		AmountInWords: AmountInWords(in.Totals.GrandTotal.Round(0).IntPart()),
		Salesperson:   in.Salesperson,
		PaymentMethod: PaymentMethodLabel,
		PaymentStatus: in.PaymentStatus,
	}, nil
}
