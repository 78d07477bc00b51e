package request

import "github.com/shopspring/decimal"

// UpdateCompanyRequest represents a business profile update request.
// Tax rate bounds are enforced by the pricing engine.
type UpdateCompanyRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Address     *string          `json:"address"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	GSTNo       *string          `json:"gst_no" binding:"omitempty,max=50"`
	Brands      *string          `json:"brands"`
	LogoRef     *string          `json:"logo_ref" binding:"omitempty,max=255"`
	CGSTEnabled *bool            `json:"cgst_enabled"`
	SGSTEnabled *bool            `json:"sgst_enabled"`
	CGSTRate    *decimal.Decimal `json:"cgst_rate"`
	SGSTRate    *decimal.Decimal `json:"sgst_rate"`
}
