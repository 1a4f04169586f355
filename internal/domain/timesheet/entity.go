package timesheet

import "time"

// Status is the review state shared by every entry of one week key
// (email, week_start_date). Admin actions move the whole set at once.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusSubmitted Status = "Submitted"
	StatusApproved  Status = "Approved"
	StatusDenied    Status = "Denied"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusApproved, StatusDenied:
		return true
	}
	return false
}

type WorkType string

const (
	WorkTypeBillable WorkType = "Billable"
	WorkTypeHoliday  WorkType = "Holiday"
)

func (w WorkType) IsValid() bool {
	return w == WorkTypeBillable || w == WorkTypeHoliday
}

// Entry is one day's hours inside a submitted week. The full set of rows for
// a week key is replaced wholesale on every save.
type Entry struct {
	EntryID         string
	Email           string
	WeekStartDate   time.Time
	Date            time.Time
	Hours           float64
	TaskDescription string
	WorkType        WorkType
	Status          Status
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
