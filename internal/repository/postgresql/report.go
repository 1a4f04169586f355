package postgresql

import (
	"context"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/report"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db database.Querier
}

func NewReportRepository(db database.Querier) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Optional week_start_date bounds are pushed down as nullable parameters so
// the statements stay static.
func (r *reportRepositoryImpl) GetWeekStats(ctx context.Context, dateRange report.DateRange) (report.WeekStats, error) {
	q := GetQuerier(ctx, r.db)

	var stats report.WeekStats

	approvedQuery := `
		SELECT COUNT(*), COALESCE(SUM(total_hours), 0)
		FROM approved_timesheets
		WHERE ($1::date IS NULL OR week_start_date >= $1)
		  AND ($2::date IS NULL OR week_start_date <= $2)
	`
	err := q.QueryRow(ctx, approvedQuery, dateRange.From, dateRange.To).Scan(&stats.Approved, &stats.TotalHours)
	if err != nil {
		return report.WeekStats{}, err
	}

	weekCountQuery := `
		SELECT COUNT(DISTINCT (email, week_start_date))
		FROM pending_timesheets
		WHERE status = $1
		  AND ($2::date IS NULL OR week_start_date >= $2)
		  AND ($3::date IS NULL OR week_start_date <= $3)
	`
	err = q.QueryRow(ctx, weekCountQuery, timesheet.StatusSubmitted, dateRange.From, dateRange.To).Scan(&stats.Pending)
	if err != nil {
		return report.WeekStats{}, err
	}

	err = q.QueryRow(ctx, weekCountQuery, timesheet.StatusDenied, dateRange.From, dateRange.To).Scan(&stats.Rejected)
	if err != nil {
		return report.WeekStats{}, err
	}

	stats.Total = stats.Approved + stats.Pending + stats.Rejected
	return stats, nil
}

func (r *reportRepositoryImpl) GetHourTotals(ctx context.Context, dateRange report.DateRange) (report.HourTotals, error) {
	q := GetQuerier(ctx, r.db)

	var totals report.HourTotals

	approvedQuery := `
		SELECT COALESCE(SUM(total_hours), 0)
		FROM approved_timesheets
		WHERE ($1::date IS NULL OR week_start_date >= $1)
		  AND ($2::date IS NULL OR week_start_date <= $2)
	`
	err := q.QueryRow(ctx, approvedQuery, dateRange.From, dateRange.To).Scan(&totals.Approved)
	if err != nil {
		return report.HourTotals{}, err
	}

	hoursQuery := `
		SELECT COALESCE(SUM(hours), 0)
		FROM pending_timesheets
		WHERE status = $1
		  AND ($2::date IS NULL OR week_start_date >= $2)
		  AND ($3::date IS NULL OR week_start_date <= $3)
	`
	err = q.QueryRow(ctx, hoursQuery, timesheet.StatusSubmitted, dateRange.From, dateRange.To).Scan(&totals.Pending)
	if err != nil {
		return report.HourTotals{}, err
	}

	err = q.QueryRow(ctx, hoursQuery, timesheet.StatusDenied, dateRange.From, dateRange.To).Scan(&totals.Rejected)
	if err != nil {
		return report.HourTotals{}, err
	}

	totals.TotalHours = totals.Approved + totals.Pending + totals.Rejected
	return totals, nil
}

func (r *reportRepositoryImpl) GetGroupedWeeks(ctx context.Context, status timesheet.Status, dateRange report.DateRange) ([]report.GroupedWeek, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pt.email, pt.week_start_date, COALESCE(SUM(pt.hours), 0), e.name, e.employee_id
		FROM pending_timesheets pt
		INNER JOIN employees e ON e.email = pt.email
		WHERE pt.status = $1
		  AND ($2::date IS NULL OR pt.week_start_date >= $2)
		  AND ($3::date IS NULL OR pt.week_start_date <= $3)
		GROUP BY pt.email, pt.week_start_date, e.name, e.employee_id
		ORDER BY pt.week_start_date DESC
	`

	rows, err := q.Query(ctx, query, status, dateRange.From, dateRange.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []report.GroupedWeek
	for rows.Next() {
		var g report.GroupedWeek
		if err := rows.Scan(&g.Email, &g.WeekStartDate, &g.Hours, &g.Name, &g.EmployeeID); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (r *reportRepositoryImpl) GetDetailedRows(ctx context.Context, status timesheet.Status, dateRange report.DateRange) ([]report.DetailRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pt.entry_id, pt.email, pt.week_start_date, pt.date, pt.hours,
			   pt.task_description, pt.work_type, pt.status, pt.rejection_reason,
			   pt.created_at, pt.updated_at,
			   e.name, e.employee_id
		FROM pending_timesheets pt
		INNER JOIN employees e ON e.email = pt.email
		WHERE pt.status = $1
		  AND ($2::date IS NULL OR pt.week_start_date >= $2)
		  AND ($3::date IS NULL OR pt.week_start_date <= $3)
		ORDER BY pt.date ASC
	`

	rows, err := q.Query(ctx, query, status, dateRange.From, dateRange.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []report.DetailRow
	for rows.Next() {
		var d report.DetailRow
		err := rows.Scan(
			&d.Entry.EntryID,
			&d.Entry.Email,
			&d.Entry.WeekStartDate,
			&d.Entry.Date,
			&d.Entry.Hours,
			&d.Entry.TaskDescription,
			&d.Entry.WorkType,
			&d.Entry.Status,
			&d.Entry.RejectionReason,
			&d.Entry.CreatedAt,
			&d.Entry.UpdatedAt,
			&d.EmployeeName,
			&d.EmployeeID,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, rows.Err()
}
