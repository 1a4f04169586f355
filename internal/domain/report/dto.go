package report

import (
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
)

// DateRange optionally bounds queries by week_start_date. Nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// MapStatusFilter translates the external report label to the stored entry
// status: Approved→Approved, Pending→Submitted, Rejected→Denied.
func MapStatusFilter(label string) (timesheet.Status, error) {
	switch label {
	case "Approved":
		return timesheet.StatusApproved, nil
	case "Pending":
		return timesheet.StatusSubmitted, nil
	case "Rejected":
		return timesheet.StatusDenied, nil
	}
	return "", ErrInvalidStatusFilter
}

// WeekStats backs the admin dashboard: week counts per category plus the
// approved hour total. Approved figures come from the approved_timesheets
// audit table; pending/rejected counts are distinct week keys in
// pending_timesheets.
type WeekStats struct {
	TotalHours float64 `json:"total_hours"`
	Approved   int64   `json:"approved"`
	Pending    int64   `json:"pending"`
	Rejected   int64   `json:"rejected"`
	Total      int64   `json:"total"`
}

// HourTotals backs the reports dashboard: summed hours per category.
type HourTotals struct {
	TotalHours float64 `json:"total_hours"`
	Approved   float64 `json:"approved"`
	Pending    float64 `json:"pending"`
	Rejected   float64 `json:"rejected"`
}

// GroupedWeek is one row of the filtered report listing: hours summed over a
// week key, joined with employee identity.
type GroupedWeek struct {
	Email         string
	WeekStartDate time.Time
	Hours         float64
	Name          string
	EmployeeID    string
}

// ReportRow is the wire shape of a GroupedWeek; hours are rendered as a
// "<n.n>h" label and status carries the external filter label.
type ReportRow struct {
	Email         string `json:"email"`
	WeekStartDate string `json:"week_start_date"`
	Hours         string `json:"hours"`
	Name          string `json:"name"`
	EmployeeID    string `json:"employee_id"`
	Status        string `json:"status"`
}

// DetailRow is one raw entry row of the spreadsheet export, joined with the
// owning employee's name and id.
type DetailRow struct {
	Entry        timesheet.Entry
	EmployeeName string
	EmployeeID   string
}
