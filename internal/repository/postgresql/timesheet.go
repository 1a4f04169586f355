package postgresql

import (
	"context"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/database"
)

type entryRepositoryImpl struct {
	db database.Querier
}

func NewEntryRepository(db database.Querier) timesheet.EntryRepository {
	return &entryRepositoryImpl{db: db}
}

func (r *entryRepositoryImpl) DeleteWeek(ctx context.Context, email string, weekStartDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM pending_timesheets
		WHERE email = $1 AND week_start_date = $2
	`

	_, err := q.Exec(ctx, query, email, weekStartDate)
	return err
}

func (r *entryRepositoryImpl) InsertEntries(ctx context.Context, entries []timesheet.Entry) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pending_timesheets (
			entry_id, email, week_start_date, date, hours,
			task_description, work_type, status, rejection_reason,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	inserted := make([]timesheet.Entry, 0, len(entries))
	for _, entry := range entries {
		err := q.QueryRow(ctx, query,
			entry.EntryID, entry.Email, entry.WeekStartDate, entry.Date, entry.Hours,
			entry.TaskDescription, entry.WorkType, entry.Status, entry.RejectionReason,
		).Scan(&entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, entry)
	}

	return inserted, nil
}

func (r *entryRepositoryImpl) GetWeek(ctx context.Context, email string, weekStartDate time.Time) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT entry_id, email, week_start_date, date, hours,
			   task_description, work_type, status, rejection_reason,
			   created_at, updated_at
		FROM pending_timesheets
		WHERE email = $1 AND week_start_date = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, email, weekStartDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		err := rows.Scan(
			&e.EntryID,
			&e.Email,
			&e.WeekStartDate,
			&e.Date,
			&e.Hours,
			&e.TaskDescription,
			&e.WorkType,
			&e.Status,
			&e.RejectionReason,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
