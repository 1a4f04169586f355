package timesheet

import (
	"testing"

	"github.com/chronoworks/timesheet-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry(date string, hours float64) EntryInput {
	return EntryInput{
		Date:            date,
		Hours:           hours,
		TaskDescription: "API development",
		WorkType:        WorkTypeBillable,
	}
}

func TestSaveWeekRequest_Validate_OK(t *testing.T) {
	t.Parallel()
	req := SaveWeekRequest{
		WeekStartDate: "2025-01-06",
		Entries: []EntryInput{
			validEntry("2025-01-06", 8),
			validEntry("2025-01-07", 7.5),
		},
	}
	assert.NoError(t, req.Validate())
}

func TestSaveWeekRequest_Validate_EmptyEntries(t *testing.T) {
	t.Parallel()
	req := SaveWeekRequest{WeekStartDate: "2025-01-06"}
	assert.NoError(t, req.Validate())
}

func TestSaveWeekRequest_Validate_BadWeekStart(t *testing.T) {
	t.Parallel()
	req := SaveWeekRequest{WeekStartDate: "06/01/2025"}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "week_start_date")
}

func TestSaveWeekRequest_Validate_HoursOutOfRange(t *testing.T) {
	t.Parallel()
	req := SaveWeekRequest{
		WeekStartDate: "2025-01-06",
		Entries:       []EntryInput{validEntry("2025-01-06", 9)},
	}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "entries[0].hours")
}

func TestSaveWeekRequest_Validate_NegativeHours(t *testing.T) {
	t.Parallel()
	req := SaveWeekRequest{
		WeekStartDate: "2025-01-06",
		Entries:       []EntryInput{validEntry("2025-01-06", -1)},
	}
	assert.Error(t, req.Validate())
}

func TestSaveWeekRequest_Validate_DailyTotalAcrossEntries(t *testing.T) {
	t.Parallel()
	// Two entries on the same day, each within range, together over the cap.
	req := SaveWeekRequest{
		WeekStartDate: "2025-01-06",
		Entries: []EntryInput{
			validEntry("2025-01-06", 5),
			validEntry("2025-01-06", 4),
		},
	}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	msg, ok := errs.ToMap()["entries[1].hours"]
	require.True(t, ok)
	assert.Contains(t, msg, "2025-01-06")
}

func TestSaveWeekRequest_Validate_MissingTaskDescription(t *testing.T) {
	t.Parallel()
	entry := validEntry("2025-01-06", 8)
	entry.TaskDescription = "   "
	req := SaveWeekRequest{WeekStartDate: "2025-01-06", Entries: []EntryInput{entry}}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "entries[0].task_description")
}

func TestSaveWeekRequest_Validate_BadWorkType(t *testing.T) {
	t.Parallel()
	entry := validEntry("2025-01-06", 8)
	entry.WorkType = "Overtime"
	req := SaveWeekRequest{WeekStartDate: "2025-01-06", Entries: []EntryInput{entry}}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "entries[0].work_type")
}

func TestSaveWeekRequest_Validate_BadEntryDateSkipsDailyTotal(t *testing.T) {
	t.Parallel()
	req := SaveWeekRequest{
		WeekStartDate: "2025-01-06",
		Entries: []EntryInput{
			{Date: "bad-date", Hours: 8, TaskDescription: "x", WorkType: WorkTypeBillable},
		},
	}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "entries[0].date")
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()
	for _, s := range []Status{StatusPending, StatusSubmitted, StatusApproved, StatusDenied} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("Draft").IsValid())
}

func TestWorkType_IsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, WorkTypeBillable.IsValid())
	assert.True(t, WorkTypeHoliday.IsValid())
	assert.False(t, WorkType("Internal").IsValid())
}
