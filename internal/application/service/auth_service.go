package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
	"github.com/mkrishnan/retailbill-api/internal/domain/repository"
	"github.com/mkrishnan/retailbill-api/pkg/apperror"
	"github.com/mkrishnan/retailbill-api/pkg/utils"
)

// AuthService handles employee authentication
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(employeeRepo repository.EmployeeRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtManager:   jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Employee     *entity.Employee
	AccessToken  string
	RefreshToken string
}

// Login authenticates an employee and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !employee.Active {
		return nil, apperror.ErrForbidden
	}
	if !employee.CheckPassword(input.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Name, employee.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Employee:     employee,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	employeeID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || !employee.Active {
		return nil, apperror.ErrUnauthorized
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Name, employee.Email)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Employee:     employee,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetEmployee retrieves an employee by ID
func (s *AuthService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// RegisterEmployeeInput represents the create employee input
type RegisterEmployeeInput struct {
	Name     string
	Email    string
	Phone    *string
	Password string
}

// RegisterEmployee creates a new employee account
func (s *AuthService) RegisterEmployee(ctx context.Context, input *RegisterEmployeeInput) (*entity.Employee, error) {
	existing, err := s.employeeRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	employee := &entity.Employee{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Active: true,
	}
	if err := employee.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// ListEmployees returns all employees
func (s *AuthService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}
