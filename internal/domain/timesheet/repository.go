package timesheet

import (
	"context"
	"time"
)

// EntryRepository - interface for the pending_timesheets table
type EntryRepository interface {
	// DeleteWeek removes every entry for the week key.
	DeleteWeek(ctx context.Context, email string, weekStartDate time.Time) error
	// InsertEntries persists a fresh set of entries and returns them with
	// database-assigned timestamps.
	InsertEntries(ctx context.Context, entries []Entry) ([]Entry, error)
	// GetWeek returns the week's entries ordered by day date ascending.
	GetWeek(ctx context.Context, email string, weekStartDate time.Time) ([]Entry, error)
}
