package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("Ada Lovelace", "EMP001", "ada@example.com", "$2a$10$hash", employee.RoleEmployee).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	created, err := repo.Create(context.Background(), employee.Employee{
		Name:         "Ada Lovelace",
		EmployeeID:   "EMP001",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         employee.RoleEmployee,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByEmail_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees")).
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "employee_id", "email", "password_hash", "role", "created_at"}))

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateEmployeeError(t *testing.T) {
	t.Parallel()

	emailErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "employees_email_key"}
	assert.ErrorIs(t, translateEmployeeError(emailErr), employee.ErrEmailExists)

	idErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "employees_employee_id_key"}
	assert.ErrorIs(t, translateEmployeeError(idErr), employee.ErrEmployeeIDExists)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateEmployeeError(other))
}
