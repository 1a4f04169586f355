package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepository_DeleteWeek(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEntryRepository(mock)
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pending_timesheets")).
		WithArgs("ada@example.com", weekStart).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	err = repo.DeleteWeek(context.Background(), "ada@example.com", weekStart)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_InsertEntries(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEntryRepository(mock)
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	entry := timesheet.Entry{
		EntryID:         "e-1",
		Email:           "ada@example.com",
		WeekStartDate:   weekStart,
		Date:            weekStart,
		Hours:           8,
		TaskDescription: "API development",
		WorkType:        timesheet.WorkTypeBillable,
		Status:          timesheet.StatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pending_timesheets")).
		WithArgs(
			entry.EntryID, entry.Email, entry.WeekStartDate, entry.Date, entry.Hours,
			entry.TaskDescription, entry.WorkType, entry.Status, entry.RejectionReason,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	inserted, err := repo.InsertEntries(context.Background(), []timesheet.Entry{entry})

	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, now, inserted[0].CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_GetWeek(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEntryRepository(mock)
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	columns := []string{
		"entry_id", "email", "week_start_date", "date", "hours",
		"task_description", "work_type", "status", "rejection_reason",
		"created_at", "updated_at",
	}
	rows := pgxmock.NewRows(columns).
		AddRow("e-1", "ada@example.com", weekStart, weekStart, 8.0,
			"API development", timesheet.WorkTypeBillable, timesheet.StatusSubmitted, (*string)(nil), now, now).
		AddRow("e-2", "ada@example.com", weekStart, weekStart.AddDate(0, 0, 1), 7.5,
			"Code review", timesheet.WorkTypeBillable, timesheet.StatusSubmitted, (*string)(nil), now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pending_timesheets")).
		WithArgs("ada@example.com", weekStart).
		WillReturnRows(rows)

	entries, err := repo.GetWeek(context.Background(), "ada@example.com", weekStart)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e-1", entries[0].EntryID)
	assert.Equal(t, 7.5, entries[1].Hours)
	assert.Nil(t, entries[0].RejectionReason)
	require.NoError(t, mock.ExpectationsWereMet())
}
