package review

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/review"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReviewServiceImpl struct {
	tx      Transactor
	reviews review.ReviewRepository
}

func NewReviewService(tx Transactor, reviews review.ReviewRepository) review.ReviewService {
	return &ReviewServiceImpl{
		tx:      tx,
		reviews: reviews,
	}
}

// ListSubmittedWeeks implements review.ReviewService.
func (s *ReviewServiceImpl) ListSubmittedWeeks(ctx context.Context) ([]review.SubmittedWeek, error) {
	weeks, err := s.reviews.ListSubmittedWeeks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted weeks: %w", err)
	}
	return weeks, nil
}

// ApproveWeek implements review.ReviewService. The status update, hour sum
// and audit insert share one transaction; there is no row locking, so two
// concurrent admin actions on the same week key race and the last commit
// wins.
func (s *ReviewServiceImpl) ApproveWeek(ctx context.Context, req review.ActionRequest, approvedBy string) error {
	weekStart, err := time.Parse(time.DateOnly, req.WeekStartDate)
	if err != nil {
		return timesheet.ErrInvalidDateFormat
	}

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		affected, err := s.reviews.UpdateWeekStatus(txCtx, req.Email, weekStart, timesheet.StatusSubmitted, timesheet.StatusApproved, nil)
		if err != nil {
			return fmt.Errorf("failed to approve entries: %w", err)
		}
		if affected == 0 {
			return review.ErrNoSubmittedEntries
		}

		totalHours, err := s.reviews.SumWeekHours(txCtx, req.Email, weekStart)
		if err != nil {
			return fmt.Errorf("failed to sum week hours: %w", err)
		}

		_, err = s.reviews.InsertApproval(txCtx, review.ApprovedSummary{
			TimesheetID:   uuid.NewString(),
			Email:         req.Email,
			WeekStartDate: weekStart,
			TotalHours:    totalHours,
			ApprovedBy:    approvedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to record approval: %w", err)
		}
		return nil
	})
}

// RejectWeek implements review.ReviewService. Same transactional contract as
// approval; the entries keep living in pending_timesheets so the owner can
// re-edit and re-submit the week.
func (s *ReviewServiceImpl) RejectWeek(ctx context.Context, req review.ActionRequest, deniedBy string) error {
	if req.Reason == nil || validator.IsEmpty(*req.Reason) {
		return review.ErrReasonRequired
	}

	weekStart, err := time.Parse(time.DateOnly, req.WeekStartDate)
	if err != nil {
		return timesheet.ErrInvalidDateFormat
	}

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		affected, err := s.reviews.UpdateWeekStatus(txCtx, req.Email, weekStart, timesheet.StatusSubmitted, timesheet.StatusDenied, req.Reason)
		if err != nil {
			return fmt.Errorf("failed to deny entries: %w", err)
		}
		if affected == 0 {
			return review.ErrNoSubmittedEntries
		}

		_, err = s.reviews.InsertDenial(txCtx, review.DeniedSummary{
			TimesheetID:     uuid.NewString(),
			Email:           req.Email,
			WeekStartDate:   weekStart,
			RejectionReason: *req.Reason,
			DeniedBy:        deniedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to record denial: %w", err)
		}
		return nil
	})
}
