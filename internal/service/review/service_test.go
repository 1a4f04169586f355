package review

import (
	"context"
	"testing"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/review"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeWeek struct {
	status timesheet.Status
	reason *string
	hours  float64
}

type fakeReviewRepo struct {
	weeks     map[string]*fakeWeek
	approvals []review.ApprovedSummary
	denials   []review.DeniedSummary
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{weeks: make(map[string]*fakeWeek)}
}

func key(email string, weekStart time.Time) string {
	return email + "|" + weekStart.Format(time.DateOnly)
}

func (r *fakeReviewRepo) ListSubmittedWeeks(_ context.Context) ([]review.SubmittedWeek, error) {
	var weeks []review.SubmittedWeek
	for k, w := range r.weeks {
		if w.status == timesheet.StatusSubmitted {
			weeks = append(weeks, review.SubmittedWeek{Email: k})
		}
	}
	return weeks, nil
}

func (r *fakeReviewRepo) UpdateWeekStatus(_ context.Context, email string, weekStart time.Time, from, to timesheet.Status, reason *string) (int64, error) {
	w, ok := r.weeks[key(email, weekStart)]
	if !ok || w.status != from {
		return 0, nil
	}
	w.status = to
	w.reason = reason
	return 1, nil
}

func (r *fakeReviewRepo) SumWeekHours(_ context.Context, email string, weekStart time.Time) (float64, error) {
	if w, ok := r.weeks[key(email, weekStart)]; ok {
		return w.hours, nil
	}
	return 0, nil
}

func (r *fakeReviewRepo) InsertApproval(_ context.Context, summary review.ApprovedSummary) (review.ApprovedSummary, error) {
	summary.ApprovalTimestamp = time.Now()
	r.approvals = append(r.approvals, summary)
	return summary, nil
}

func (r *fakeReviewRepo) InsertDenial(_ context.Context, summary review.DeniedSummary) (review.DeniedSummary, error) {
	summary.DeniedAt = time.Now()
	r.denials = append(r.denials, summary)
	return summary, nil
}

func strPtr(s string) *string { return &s }

func TestReviewService_ApproveWeek_WritesSingleSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeReviewRepo()
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	repo.weeks[key("ada@example.com", weekStart)] = &fakeWeek{status: timesheet.StatusSubmitted, hours: 38.5}
	svc := NewReviewService(passthroughTx{}, repo)

	err := svc.ApproveWeek(ctx, review.ActionRequest{Email: "ada@example.com", WeekStartDate: "2025-01-06"}, "admin@system.com")

	require.NoError(t, err)
	require.Len(t, repo.approvals, 1)
	summary := repo.approvals[0]
	assert.NotEmpty(t, summary.TimesheetID)
	assert.Equal(t, "ada@example.com", summary.Email)
	assert.Equal(t, 38.5, summary.TotalHours)
	assert.Equal(t, "admin@system.com", summary.ApprovedBy)
	assert.Equal(t, timesheet.StatusApproved, repo.weeks[key("ada@example.com", weekStart)].status)
}

func TestReviewService_ApproveWeek_NoSubmittedEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeReviewRepo()
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	repo.weeks[key("ada@example.com", weekStart)] = &fakeWeek{status: timesheet.StatusPending, hours: 8}
	svc := NewReviewService(passthroughTx{}, repo)

	err := svc.ApproveWeek(ctx, review.ActionRequest{Email: "ada@example.com", WeekStartDate: "2025-01-06"}, "admin@system.com")

	assert.ErrorIs(t, err, review.ErrNoSubmittedEntries)
	assert.Empty(t, repo.approvals)
}

func TestReviewService_ApproveWeek_InvalidDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewReviewService(passthroughTx{}, newFakeReviewRepo())

	err := svc.ApproveWeek(ctx, review.ActionRequest{Email: "ada@example.com", WeekStartDate: "01/06/2025"}, "admin@system.com")
	assert.ErrorIs(t, err, timesheet.ErrInvalidDateFormat)
}

func TestReviewService_RejectWeek_WritesDenial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeReviewRepo()
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	repo.weeks[key("ada@example.com", weekStart)] = &fakeWeek{status: timesheet.StatusSubmitted, hours: 40}
	svc := NewReviewService(passthroughTx{}, repo)

	err := svc.RejectWeek(ctx, review.ActionRequest{
		Email:         "ada@example.com",
		WeekStartDate: "2025-01-06",
		Reason:        strPtr("Hours do not match project records"),
	}, "admin@system.com")

	require.NoError(t, err)
	require.Len(t, repo.denials, 1)
	assert.Equal(t, "Hours do not match project records", repo.denials[0].RejectionReason)
	assert.Equal(t, "admin@system.com", repo.denials[0].DeniedBy)

	week := repo.weeks[key("ada@example.com", weekStart)]
	assert.Equal(t, timesheet.StatusDenied, week.status)
	require.NotNil(t, week.reason)
	assert.Equal(t, "Hours do not match project records", *week.reason)
}

func TestReviewService_RejectWeek_ReasonRequired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeReviewRepo()
	svc := NewReviewService(passthroughTx{}, repo)

	err := svc.RejectWeek(ctx, review.ActionRequest{Email: "ada@example.com", WeekStartDate: "2025-01-06"}, "admin@system.com")
	assert.ErrorIs(t, err, review.ErrReasonRequired)

	err = svc.RejectWeek(ctx, review.ActionRequest{
		Email:         "ada@example.com",
		WeekStartDate: "2025-01-06",
		Reason:        strPtr("   "),
	}, "admin@system.com")
	assert.ErrorIs(t, err, review.ErrReasonRequired)
	assert.Empty(t, repo.denials)
}

func TestReviewService_RejectWeek_NoSubmittedEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewReviewService(passthroughTx{}, newFakeReviewRepo())

	err := svc.RejectWeek(ctx, review.ActionRequest{
		Email:         "ada@example.com",
		WeekStartDate: "2025-01-06",
		Reason:        strPtr("nothing submitted"),
	}, "admin@system.com")
	assert.ErrorIs(t, err, review.ErrNoSubmittedEntries)
}

func TestReviewService_ListSubmittedWeeks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeReviewRepo()
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	repo.weeks[key("ada@example.com", weekStart)] = &fakeWeek{status: timesheet.StatusSubmitted}
	repo.weeks[key("bob@example.com", weekStart)] = &fakeWeek{status: timesheet.StatusApproved}
	svc := NewReviewService(passthroughTx{}, repo)

	weeks, err := svc.ListSubmittedWeeks(ctx)
	require.NoError(t, err)
	assert.Len(t, weeks, 1)
}
