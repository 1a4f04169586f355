package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/auth"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/employee"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employees employee.EmployeeRepository
	jwt       jwt.Service
}

func NewAuthService(employees employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employees: employees,
		jwt:       jwtService,
	}
}

// CreateAccount implements auth.AuthService. Passwords are stored as bcrypt
// hashes; the raw password never reaches the repository.
func (a *AuthServiceImpl) CreateAccount(ctx context.Context, req auth.SignupRequest) (employee.Profile, error) {
	if _, err := a.employees.GetByEmail(ctx, req.Email); err == nil {
		return employee.Profile{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Profile{}, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := a.employees.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return employee.Profile{}, employee.ErrEmployeeIDExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Profile{}, fmt.Errorf("failed to check employee id: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.employees.Create(ctx, employee.Employee{
		Name:         req.Name,
		EmployeeID:   req.EmployeeID,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		return employee.Profile{}, err
	}

	return created.Profile(), nil
}

// Authenticate implements auth.AuthService. An unknown email and a wrong
// password fail with the same error so callers cannot probe for accounts.
func (a *AuthServiceImpl) Authenticate(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	emp, err := a.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwt.GenerateAccessToken(emp.ID, emp.Email, emp.EmployeeID, string(emp.Role))
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Profile:              emp.Profile(),
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
	}, nil
}
