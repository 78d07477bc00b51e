package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a billing customer
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	GSTNo     *string        `gorm:"size:50;column:gst_no" json:"gst_no,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Block returns the bill-to block rendered on invoice documents.
func (c *Customer) Block() CustomerBlock {
	if c == nil {
		return CustomerBlock{Name: "Walk-in Customer"}
	}
	b := CustomerBlock{Name: c.Name}
	if c.Phone != nil {
		b.Phone = *c.Phone
	}
	if c.GSTNo != nil {
		b.GST = *c.GSTNo
	}
	if c.Address != nil {
		b.Address = *c.Address
	}
	return b
}
