package auth

import (
	"context"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/employee"
)

type AuthService interface {
	// CreateAccount registers a new employee. Duplicate email or employee id
	// fails with the matching employee domain error.
	CreateAccount(ctx context.Context, req SignupRequest) (employee.Profile, error)
	// Authenticate verifies credentials and issues an access token. Unknown
	// email and wrong password fail identically with ErrInvalidCredentials.
	Authenticate(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
