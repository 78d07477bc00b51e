package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mkrishnan/retailbill-api/internal/application/service"
	"github.com/mkrishnan/retailbill-api/internal/presentation/http/dto/request"
	"github.com/mkrishnan/retailbill-api/internal/presentation/http/dto/response"
)

// CompanyHandler handles business profile HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get handles retrieving the business profile
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile retrieved successfully", company)
}

// Update handles updating the business profile and tax defaults
func (h *CompanyHandler) Update(c *gin.Context) {
	var req request.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), &service.UpdateCompanyInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		GSTNo:       req.GSTNo,
		Brands:      req.Brands,
		LogoRef:     req.LogoRef,
		CGSTEnabled: req.CGSTEnabled,
		SGSTEnabled: req.SGSTEnabled,
		CGSTRate:    req.CGSTRate,
		SGSTRate:    req.SGSTRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile updated successfully", company)
}
