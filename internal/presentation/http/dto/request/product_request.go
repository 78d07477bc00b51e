package request

import "github.com/shopspring/decimal"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,min=2,max=255"`
	Code         string          `json:"code" binding:"required,min=1,max=100"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Code         *string          `json:"code" binding:"omitempty,min=1,max=100"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
}

// ProductFilterRequest represents product list filter parameters
type ProductFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
