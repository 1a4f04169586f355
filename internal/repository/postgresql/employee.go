package postgresql

import (
	"context"
	"errors"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/employee"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL unique_violation
const uniqueViolationCode = "23505"

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, employee_id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		emp.Name, emp.EmployeeID, emp.Email, emp.PasswordHash, emp.Role,
	).Scan(&emp.ID, &emp.CreatedAt)

	if err != nil {
		return employee.Employee{}, translateEmployeeError(err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, employee_id, email, password_hash, role, created_at
		FROM employees
		WHERE email = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, email))
}

func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, employee_id, email, password_hash, role, created_at
		FROM employees
		WHERE employee_id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, employeeID))
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.EmployeeID,
		&emp.Email,
		&emp.PasswordHash,
		&emp.Role,
		&emp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// translateEmployeeError maps unique constraint violations onto the domain's
// conflict errors.
func translateEmployeeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "employees_email_key":
			return employee.ErrEmailExists
		case "employees_employee_id_key":
			return employee.ErrEmployeeIDExists
		}
		return employee.ErrEmailExists
	}
	return err
}
