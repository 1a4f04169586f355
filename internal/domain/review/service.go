package review

import "context"

type ReviewService interface {
	ListSubmittedWeeks(ctx context.Context) ([]SubmittedWeek, error)
	// ApproveWeek moves the week's Submitted entries to Approved and appends
	// one ApprovedSummary carrying the week's summed hours, all in one
	// transaction. ErrNoSubmittedEntries when the update matches no rows.
	ApproveWeek(ctx context.Context, req ActionRequest, approvedBy string) error
	// RejectWeek moves the week's Submitted entries to Denied with the given
	// reason and appends one DeniedSummary. ErrReasonRequired on an empty
	// reason; otherwise the same transactional contract as approval.
	RejectWeek(ctx context.Context, req ActionRequest, deniedBy string) error
}
