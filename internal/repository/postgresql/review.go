package postgresql

import (
	"context"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/review"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db database.Querier
}

func NewReviewRepository(db database.Querier) review.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

func (r *reviewRepositoryImpl) ListSubmittedWeeks(ctx context.Context) ([]review.SubmittedWeek, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT pt.email, pt.week_start_date, e.name, e.employee_id
		FROM pending_timesheets pt
		INNER JOIN employees e ON e.email = pt.email
		WHERE pt.status = $1
		ORDER BY pt.week_start_date DESC, pt.email ASC
	`

	rows, err := q.Query(ctx, query, timesheet.StatusSubmitted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []review.SubmittedWeek
	for rows.Next() {
		var (
			week      review.SubmittedWeek
			weekStart time.Time
		)
		if err := rows.Scan(&week.Email, &weekStart, &week.Name, &week.EmployeeID); err != nil {
			return nil, err
		}
		week.WeekStartDate = weekStart.Format(time.DateOnly)
		weeks = append(weeks, week)
	}

	return weeks, rows.Err()
}

func (r *reviewRepositoryImpl) UpdateWeekStatus(ctx context.Context, email string, weekStartDate time.Time, from, to timesheet.Status, reason *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pending_timesheets
		SET status = $1, rejection_reason = $2, updated_at = NOW()
		WHERE email = $3 AND week_start_date = $4 AND status = $5
	`

	commandTag, err := q.Exec(ctx, query, to, reason, email, weekStartDate, from)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

func (r *reviewRepositoryImpl) SumWeekHours(ctx context.Context, email string, weekStartDate time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM pending_timesheets
		WHERE email = $1 AND week_start_date = $2
	`

	var total float64
	if err := q.QueryRow(ctx, query, email, weekStartDate).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *reviewRepositoryImpl) InsertApproval(ctx context.Context, summary review.ApprovedSummary) (review.ApprovedSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO approved_timesheets (
			timesheet_id, email, week_start_date, total_hours, approval_timestamp, approved_by
		) VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING approval_timestamp
	`

	err := q.QueryRow(ctx, query,
		summary.TimesheetID, summary.Email, summary.WeekStartDate, summary.TotalHours, summary.ApprovedBy,
	).Scan(&summary.ApprovalTimestamp)

	if err != nil {
		return review.ApprovedSummary{}, err
	}
	return summary, nil
}

func (r *reviewRepositoryImpl) InsertDenial(ctx context.Context, summary review.DeniedSummary) (review.DeniedSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO denied_timesheets (
			timesheet_id, email, week_start_date, rejection_reason, denied_at, denied_by
		) VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING denied_at
	`

	err := q.QueryRow(ctx, query,
		summary.TimesheetID, summary.Email, summary.WeekStartDate, summary.RejectionReason, summary.DeniedBy,
	).Scan(&summary.DeniedAt)

	if err != nil {
		return review.DeniedSummary{}, err
	}
	return summary, nil
}
