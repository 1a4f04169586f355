package review

import "time"

// ApprovedSummary is the append-only audit record written once per approval.
type ApprovedSummary struct {
	TimesheetID       string
	Email             string
	WeekStartDate     time.Time
	TotalHours        float64
	ApprovalTimestamp time.Time
	ApprovedBy        string
}

// DeniedSummary is the append-only audit record written once per denial.
type DeniedSummary struct {
	TimesheetID     string
	Email           string
	WeekStartDate   time.Time
	RejectionReason string
	DeniedAt        time.Time
	DeniedBy        string
}

// SubmittedWeek identifies one week key awaiting review, joined with the
// owner's identity.
type SubmittedWeek struct {
	Email         string `json:"email"`
	WeekStartDate string `json:"week_start_date"`
	Name          string `json:"name"`
	EmployeeID    string `json:"employee_id"`
}
