package review

import (
	"context"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
)

// ReviewRepository - queries backing the admin review workflow. The write
// methods are expected to run under the service's transaction.
type ReviewRepository interface {
	// ListSubmittedWeeks returns distinct submitted week keys joined with
	// employee identity.
	ListSubmittedWeeks(ctx context.Context) ([]SubmittedWeek, error)
	// UpdateWeekStatus moves every entry of the week key from one status to
	// another and returns the number of rows touched. A nil reason clears
	// rejection_reason.
	UpdateWeekStatus(ctx context.Context, email string, weekStartDate time.Time, from, to timesheet.Status, reason *string) (int64, error)
	// SumWeekHours totals the hours of every entry under the week key,
	// regardless of status.
	SumWeekHours(ctx context.Context, email string, weekStartDate time.Time) (float64, error)
	InsertApproval(ctx context.Context, summary ApprovedSummary) (ApprovedSummary, error)
	InsertDenial(ctx context.Context, summary DeniedSummary) (DeniedSummary, error)
}
