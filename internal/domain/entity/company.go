package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Company is the single business profile printed on every invoice. It
// also carries the current CGST/SGST defaults used when a persisted
// invoice is reopened for editing; invoices themselves do not record the
// configuration they were created under.
type Company struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Address     *string         `gorm:"type:text" json:"address,omitempty"`
	Phone       *string         `gorm:"size:50" json:"phone,omitempty"`
	GSTNo       *string         `gorm:"size:50;column:gst_no" json:"gst_no,omitempty"`
	Brands      *string         `gorm:"type:text" json:"brands,omitempty"`
	LogoRef     *string         `gorm:"size:255" json:"logo_ref,omitempty"`
	CGSTEnabled bool            `gorm:"default:true;column:cgst_enabled" json:"cgst_enabled"`
	SGSTEnabled bool            `gorm:"default:true;column:sgst_enabled" json:"sgst_enabled"`
	CGSTRate    decimal.Decimal `gorm:"type:decimal(5,2);default:9;column:cgst_rate" json:"cgst_rate"`
	SGSTRate    decimal.Decimal `gorm:"type:decimal(5,2);default:9;column:sgst_rate" json:"sgst_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the company profile
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}

// Block returns the header block rendered on invoice documents.
func (c *Company) Block() CompanyBlock {
	b := CompanyBlock{Name: c.Name}
	if c.Address != nil {
		b.Address = *c.Address
	}
	if c.Phone != nil {
		b.Phone = *c.Phone
	}
	if c.GSTNo != nil {
		b.GST = *c.GSTNo
	}
	if c.Brands != nil {
		b.Brands = *c.Brands
	}
	if c.LogoRef != nil {
		b.LogoRef = *c.LogoRef
	}
	return b
}
