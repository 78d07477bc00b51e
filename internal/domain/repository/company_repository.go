package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
)

// CompanyRepository defines the interface for the business profile
type CompanyRepository interface {
	// Get returns the single company profile.
	Get(ctx context.Context) (*entity.Company, error)
	// Save creates or updates the company profile.
	Save(ctx context.Context, company *entity.Company) error
}

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context) ([]entity.Employee, error)
}
