package response

import (
	"errors"
	"net/http"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/auth"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/employee"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/report"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/review"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped
// becomes a generic 500 so no internal detail leaks to the caller.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidDateFormat):
		BadRequest(w, err.Error(), nil)

	// Review domain errors
	case errors.Is(err, review.ErrNoSubmittedEntries):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, review.ErrReasonRequired):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidStatusFilter):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrNoReportData):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
