package timesheet

import "context"

type TimesheetService interface {
	// SaveWeek replaces the entire entry set for (email, week_start_date)
	// inside one transaction and returns the inserted rows. Entries omitted
	// from a later call are dropped, not merged.
	SaveWeek(ctx context.Context, email string, req SaveWeekRequest, status Status) ([]Entry, error)
	// GetWeek returns the week's entries ordered by date ascending; an empty
	// slice when none exist. A malformed date fails with ErrInvalidDateFormat.
	GetWeek(ctx context.Context, email string, weekStartDate string) ([]Entry, error)
}
