package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mkrishnan/retailbill-api/internal/domain/enum"
)

// Invoice is a persisted sales invoice. All money columns are stored at 4
// decimal places; per-line Price is tax-inclusive while Rate is pre-tax.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	InvoiceDate   time.Time          `gorm:"type:date;not null" json:"invoice_date"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	EmployeeID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"employee_id"`
	SubTotal      decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"sub_total"`
	TotalDiscount decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"total_discount"`
	CGSTAmount    decimal.Decimal    `gorm:"type:decimal(20,4);default:0;column:cgst_amount" json:"cgst_amount"`
	SGSTAmount    decimal.Decimal    `gorm:"type:decimal(20,4);default:0;column:sgst_amount" json:"sgst_amount"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	AdvanceAmount decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"advance_amount"`
	BalanceAmount decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"balance_amount"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Employee Employee      `gorm:"foreignKey:EmployeeID" json:"-"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is a persisted invoice line.
type InvoiceItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID *uuid.UUID      `gorm:"type:uuid;index" json:"product_id,omitempty"`
	ItemName  string          `gorm:"size:255;not null" json:"item_name"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Rate      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"rate"`
	Discount  decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount"`
	Price     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price"`
	RowTotal  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"row_total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice  `gorm:"foreignKey:InvoiceID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
