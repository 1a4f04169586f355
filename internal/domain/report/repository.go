package report

import (
	"context"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
)

// ReportRepository - aggregate queries over pending_timesheets and
// approved_timesheets
type ReportRepository interface {
	GetWeekStats(ctx context.Context, dateRange DateRange) (WeekStats, error)
	GetHourTotals(ctx context.Context, dateRange DateRange) (HourTotals, error)
	// GetGroupedWeeks sums hours per week key for entries in the given
	// status, ordered by week_start_date descending.
	GetGroupedWeeks(ctx context.Context, status timesheet.Status, dateRange DateRange) ([]GroupedWeek, error)
	// GetDetailedRows returns every raw entry row in the given status,
	// ordered by day date ascending.
	GetDetailedRows(ctx context.Context, status timesheet.Status, dateRange DateRange) ([]DetailRow, error)
}
