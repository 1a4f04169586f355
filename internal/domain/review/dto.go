package review

import (
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/validator"
)

// ActionRequest is the payload for both approve and reject. Reason is only
// consulted on reject, where it is required.
type ActionRequest struct {
	Email         string  `json:"email"`
	WeekStartDate string  `json:"week_start_date"`
	Reason        *string `json:"reason,omitempty"`
}

func (r *ActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if _, ok := validator.IsValidDate(r.WeekStartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start_date",
			Message: "week_start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
