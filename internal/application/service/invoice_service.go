package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkrishnan/retailbill-api/internal/domain/billing"
	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
	"github.com/mkrishnan/retailbill-api/internal/domain/repository"
	"github.com/mkrishnan/retailbill-api/pkg/apperror"
	"github.com/mkrishnan/retailbill-api/pkg/pagination"
)

// InvoiceService handles invoice creation, editing and payment state
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	companyRepo  repository.CompanyRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		companyRepo:  companyRepo,
	}
}

// InvoiceLineInput represents one editable invoice line
type InvoiceLineInput struct {
	ItemName        string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	EmployeeID    uuid.UUID
	CustomerID    *uuid.UUID
	InvoiceDate   time.Time
	AdvanceAmount decimal.Decimal
	Items         []InvoiceLineInput
}

// UpdateInvoiceInput represents the update invoice input. The invoice
// number is kept from the stored invoice; everything else is replaced.
type UpdateInvoiceInput struct {
	CustomerID    *uuid.UUID
	InvoiceDate   time.Time
	AdvanceAmount decimal.Decimal
	Items         []InvoiceLineInput
}

// EditPrefill is the editable form state reconstructed from a stored
// invoice. Warnings carries per-line messages for rows whose unit price
// could not be derived; those rows come back with a zero unit price.
type EditPrefill struct {
	Invoice  *entity.Invoice    `json:"invoice"`
	Items    []InvoiceLineInput `json:"items"`
	Config   billing.TaxConfig  `json:"tax_config"`
	Warnings []string           `json:"warnings,omitempty"`
}

// CurrentTaxConfig returns the company-wide tax configuration applied to
// every invoice computation.
func (s *InvoiceService) CurrentTaxConfig(ctx context.Context) (billing.TaxConfig, error) {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return billing.TaxConfig{}, err
	}
	if company == nil {
		return billing.TaxConfig{}, apperror.NewNotFoundError("Company profile")
	}
	return billing.TaxConfig{
		CGSTEnabled: company.CGSTEnabled,
		SGSTEnabled: company.SGSTEnabled,
		CGSTRate:    company.CGSTRate,
		SGSTRate:    company.SGSTRate,
	}, nil
}

// CreateInvoice computes totals for the submitted lines and persists the
// invoice with a generated invoice number.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	cfg, err := s.CurrentTaxConfig(ctx)
	if err != nil {
		return nil, err
	}

	lines := toLineItems(input.Items)
	totals, err := billing.Aggregate(lines, cfg, input.AdvanceAmount)
	if err != nil {
		return nil, mapBillingError(err)
	}
	state := billing.ApplyAdvance(totals.GrandTotal, input.AdvanceAmount)

	items, err := s.buildItems(ctx, lines, cfg)
	if err != nil {
		return nil, err
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}

	invoice := &entity.Invoice{
		InvoiceNo:     billing.GenerateInvoiceNumber(),
		InvoiceDate:   invoiceDate,
		CustomerID:    input.CustomerID,
		EmployeeID:    input.EmployeeID,
		SubTotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		CGSTAmount:    totals.CGSTAmount,
		SGSTAmount:    totals.SGSTAmount,
		TotalAmount:   totals.GrandTotal,
		AdvanceAmount: state.AdvanceAmount,
		BalanceAmount: state.BalanceAmount,
		PaymentStatus: state.Status,
		Items:         items,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// GetEditPrefill reconstructs editable line items from a stored invoice
// under the company's current tax configuration. Rows whose unit price
// cannot be derived are returned with a zero price and a warning rather
// than failing the whole prefill.
func (s *InvoiceService) GetEditPrefill(ctx context.Context, id uuid.UUID) (*EditPrefill, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg, err := s.CurrentTaxConfig(ctx)
	if err != nil {
		return nil, err
	}

	persisted := make([]billing.PersistedLineItem, len(invoice.Items))
	for i, item := range invoice.Items {
		persisted[i] = billing.PersistedLineItem{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Discount: item.Discount,
			Price:    item.Price,
			RowTotal: item.RowTotal,
		}
	}

	lines, errs := billing.ReconcileForEdit(persisted, cfg)

	prefill := &EditPrefill{
		Invoice: invoice,
		Config:  cfg,
		Items:   make([]InvoiceLineInput, len(lines)),
	}
	for i, line := range lines {
		prefill.Items[i] = InvoiceLineInput{
			ItemName:        line.Name,
			Quantity:        line.Quantity,
			UnitPrice:       billing.Round2(line.UnitPrice),
			DiscountPercent: line.DiscountPercent,
		}
	}
	for _, e := range errs {
		prefill.Warnings = append(prefill.Warnings, e.Error())
	}
	return prefill, nil
}

// UpdateInvoice recomputes totals from the submitted lines and replaces
// the stored invoice's items and header amounts. The invoice number and
// creating employee are preserved.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	cfg, err := s.CurrentTaxConfig(ctx)
	if err != nil {
		return nil, err
	}

	lines := toLineItems(input.Items)
	totals, err := billing.Aggregate(lines, cfg, input.AdvanceAmount)
	if err != nil {
		return nil, mapBillingError(err)
	}
	state := billing.ApplyAdvance(totals.GrandTotal, input.AdvanceAmount)

	items, err := s.buildItems(ctx, lines, cfg)
	if err != nil {
		return nil, err
	}

	invoice.CustomerID = input.CustomerID
	if !input.InvoiceDate.IsZero() {
		invoice.InvoiceDate = input.InvoiceDate
	}
	invoice.SubTotal = totals.Subtotal
	invoice.TotalDiscount = totals.TotalDiscount
	invoice.CGSTAmount = totals.CGSTAmount
	invoice.SGSTAmount = totals.SGSTAmount
	invoice.TotalAmount = totals.GrandTotal
	invoice.AdvanceAmount = state.AdvanceAmount
	invoice.BalanceAmount = state.BalanceAmount
	invoice.PaymentStatus = state.Status

	if err := s.invoiceRepo.Update(ctx, invoice, items); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, id)
}

// UpdateAdvance edits the advance amount on a stored invoice; payment
// status follows from whether the advance covers the grand total.
func (s *InvoiceService) UpdateAdvance(ctx context.Context, id uuid.UUID, advance decimal.Decimal) (*entity.Invoice, error) {
	if advance.IsNegative() {
		return nil, apperror.NewLineError(-1, "advance_amount", "must not be negative")
	}

	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	state := billing.ApplyAdvance(invoice.TotalAmount, advance)
	return s.applyPaymentState(ctx, invoice, state)
}

// MarkPaid forces an invoice to paid, setting the advance to the grand
// total and the balance to zero.
func (s *InvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyPaymentState(ctx, invoice, billing.MarkPaid(invoice.TotalAmount))
}

// MarkUnpaid forces an invoice to unpaid, zeroing the advance.
func (s *InvoiceService) MarkUnpaid(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyPaymentState(ctx, invoice, billing.MarkUnpaid(invoice.TotalAmount))
}

// DeleteInvoice soft-deletes an invoice and its items
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.Delete(ctx, id)
}

func (s *InvoiceService) applyPaymentState(ctx context.Context, invoice *entity.Invoice, state billing.PaymentState) (*entity.Invoice, error) {
	invoice.PaymentStatus = state.Status
	invoice.AdvanceAmount = state.AdvanceAmount
	invoice.BalanceAmount = state.BalanceAmount

	if err := s.invoiceRepo.Update(ctx, invoice, invoice.Items); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// buildItems produces persisted line rows from validated line items. The
// stored Price is tax-inclusive while Rate stays pre-tax, so editing can
// later reverse-derive the unit price.
func (s *InvoiceService) buildItems(ctx context.Context, lines []billing.LineItem, cfg billing.TaxConfig) ([]entity.InvoiceItem, error) {
	items := make([]entity.InvoiceItem, 0, len(lines))
	for i, line := range lines {
		amounts, err := line.ComputeRow()
		if err != nil {
			if verr, ok := err.(*billing.ValidationError); ok {
				verr.Line = i
			}
			return nil, mapBillingError(err)
		}
		rowTax := billing.ApplyForward(amounts.TaxableAmount, cfg)

		item := entity.InvoiceItem{
			ItemName: line.Name,
			Quantity: line.Quantity,
			Rate:     line.UnitPrice,
			Discount: line.DiscountPercent,
			Price:    rowTax.TaxInclusiveAmount,
			RowTotal: rowTax.TaxInclusiveAmount,
		}

		// Best-effort catalog match; free-form item names stay unlinked.
		product, err := s.productRepo.GetByName(ctx, line.Name)
		if err == nil && product != nil {
			item.ProductID = &product.ID
		}
		items = append(items, item)
	}
	return items, nil
}

func toLineItems(inputs []InvoiceLineInput) []billing.LineItem {
	lines := make([]billing.LineItem, len(inputs))
	for i, in := range inputs {
		lines[i] = billing.LineItem{
			Name:            in.ItemName,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
		}
	}
	return lines
}

// mapBillingError converts engine errors into HTTP-facing AppErrors.
func mapBillingError(err error) error {
	switch e := err.(type) {
	case *billing.ValidationError:
		return apperror.NewLineError(e.Line, e.Field, e.Message)
	case *billing.ComputationError:
		return apperror.NewComputationError(e.Line, e.Message)
	default:
		return err
	}
}
