package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest represents one line on an invoice form. Amounts are
// decoded as decimals; range checks happen in the pricing engine so the
// caller gets line-indexed errors.
type InvoiceLineRequest struct {
	ItemName        string          `json:"item_name" binding:"required,min=1,max=255"`
	Quantity        int             `json:"quantity" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	CustomerID    *uuid.UUID           `json:"customer_id"`
	InvoiceDate   string               `json:"invoice_date"` // "2006-01-02", defaults to today
	AdvanceAmount decimal.Decimal      `json:"advance_amount"`
	Items         []InvoiceLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents an invoice edit request. The full set
// of lines replaces the stored ones.
type UpdateInvoiceRequest struct {
	CustomerID    *uuid.UUID           `json:"customer_id"`
	InvoiceDate   string               `json:"invoice_date"`
	AdvanceAmount decimal.Decimal      `json:"advance_amount"`
	Items         []InvoiceLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateAdvanceRequest edits only the advance paid on an invoice
type UpdateAdvanceRequest struct {
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
}

// InvoiceFilterRequest represents invoice list filter parameters
type InvoiceFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"` // "PAID" or "UNPAID"
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"` // "2006-01-02"
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
