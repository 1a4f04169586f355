package timesheet

import (
	"fmt"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/pkg/validator"
)

// MaxDailyHours caps the summed hours per calendar day inside one save call.
const MaxDailyHours = 8.0

type EntryInput struct {
	Date            string   `json:"date"`
	Hours           float64  `json:"hours"`
	TaskDescription string   `json:"task_description"`
	WorkType        WorkType `json:"work_type"`
}

type SaveWeekRequest struct {
	WeekStartDate string       `json:"week_start_date"`
	Entries       []EntryInput `json:"entries"`
}

func (r *SaveWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start_date",
			Message: "week_start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	dailyTotals := make(map[string]float64)
	for i, entry := range r.Entries {
		field := fmt.Sprintf("entries[%d]", i)

		if _, ok := validator.IsValidDate(entry.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "date must be a valid date in YYYY-MM-DD format",
			})
			continue
		}

		if entry.Hours < 0 || entry.Hours > MaxDailyHours {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".hours",
				Message: fmt.Sprintf("hours must be between 0 and %g", MaxDailyHours),
			})
		}

		if validator.IsEmpty(entry.TaskDescription) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".task_description",
				Message: "task_description is required",
			})
		}

		if !entry.WorkType.IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".work_type",
				Message: "work_type must be either Billable or Holiday",
			})
		}

		dailyTotals[entry.Date] += entry.Hours
		if dailyTotals[entry.Date] > MaxDailyHours {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".hours",
				Message: fmt.Sprintf("total hours for %s cannot exceed %g hours", entry.Date, MaxDailyHours),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	EntryID         string   `json:"entry_id"`
	Email           string   `json:"email"`
	WeekStartDate   string   `json:"week_start_date"`
	Date            string   `json:"date"`
	Hours           float64  `json:"hours"`
	TaskDescription string   `json:"task_description"`
	WorkType        WorkType `json:"work_type"`
	Status          Status   `json:"status"`
	RejectionReason *string  `json:"rejection_reason,omitempty"`
}

func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		Email:           e.Email,
		WeekStartDate:   e.WeekStartDate.Format(time.DateOnly),
		Date:            e.Date.Format(time.DateOnly),
		Hours:           e.Hours,
		TaskDescription: e.TaskDescription,
		WorkType:        e.WorkType,
		Status:          e.Status,
		RejectionReason: e.RejectionReason,
	}
}

func NewEntryResponses(entries []Entry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, NewEntryResponse(e))
	}
	return responses
}
