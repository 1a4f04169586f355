package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
}
