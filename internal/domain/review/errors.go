package review

import "errors"

var (
	ErrNoSubmittedEntries = errors.New("No submitted entries for that week")
	ErrReasonRequired     = errors.New("Rejection reason required")
)
