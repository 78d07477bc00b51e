package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkrishnan/retailbill-api/internal/domain/billing"
	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
	"github.com/mkrishnan/retailbill-api/internal/domain/repository"
	"github.com/mkrishnan/retailbill-api/pkg/apperror"
)

// CompanyService manages the single business profile and its tax
// configuration defaults.
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// GetCompany returns the business profile
func (s *CompanyService) GetCompany(ctx context.Context) (*entity.Company, error) {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company profile")
	}
	return company, nil
}

// UpdateCompanyInput represents the update company input
type UpdateCompanyInput struct {
	Name        *string
	Address     *string
	Phone       *string
	GSTNo       *string
	Brands      *string
	LogoRef     *string
	CGSTEnabled *bool
	SGSTEnabled *bool
	CGSTRate    *decimal.Decimal
	SGSTRate    *decimal.Decimal
}

// UpdateCompany updates the business profile. The resulting tax
// configuration must stay within the 0-9 rate bounds.
func (s *CompanyService) UpdateCompany(ctx context.Context, input *UpdateCompanyInput) (*entity.Company, error) {
	company, err := s.GetCompany(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Address != nil {
		company.Address = input.Address
	}
	if input.Phone != nil {
		company.Phone = input.Phone
	}
	if input.GSTNo != nil {
		company.GSTNo = input.GSTNo
	}
	if input.Brands != nil {
		company.Brands = input.Brands
	}
	if input.LogoRef != nil {
		company.LogoRef = input.LogoRef
	}
	if input.CGSTEnabled != nil {
		company.CGSTEnabled = *input.CGSTEnabled
	}
	if input.SGSTEnabled != nil {
		company.SGSTEnabled = *input.SGSTEnabled
	}
	if input.CGSTRate != nil {
		company.CGSTRate = *input.CGSTRate
	}
	if input.SGSTRate != nil {
		company.SGSTRate = *input.SGSTRate
	}

	cfg := billing.TaxConfig{
		CGSTEnabled: company.CGSTEnabled,
		SGSTEnabled: company.SGSTEnabled,
		CGSTRate:    company.CGSTRate,
		SGSTRate:    company.SGSTRate,
	}
	if err := cfg.Validate(); err != nil {
		return nil, mapBillingError(err)
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
