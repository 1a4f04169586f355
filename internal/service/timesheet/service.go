package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/google/uuid"
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TimesheetServiceImpl struct {
	tx      Transactor
	entries timesheet.EntryRepository
}

func NewTimesheetService(tx Transactor, entries timesheet.EntryRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		tx:      tx,
		entries: entries,
	}
}

// SaveWeek implements timesheet.TimesheetService. The whole prior set of
// entries for the week key is deleted and the supplied set inserted in its
// place; both steps share one transaction, so a failed insert leaves the
// previous week intact.
func (s *TimesheetServiceImpl) SaveWeek(ctx context.Context, email string, req timesheet.SaveWeekRequest, status timesheet.Status) ([]timesheet.Entry, error) {
	weekStart, err := time.Parse(time.DateOnly, req.WeekStartDate)
	if err != nil {
		return nil, timesheet.ErrInvalidDateFormat
	}

	newEntries := make([]timesheet.Entry, 0, len(req.Entries))
	for _, input := range req.Entries {
		date, err := time.Parse(time.DateOnly, input.Date)
		if err != nil {
			return nil, timesheet.ErrInvalidDateFormat
		}
		newEntries = append(newEntries, timesheet.Entry{
			EntryID:         uuid.NewString(),
			Email:           email,
			WeekStartDate:   weekStart,
			Date:            date,
			Hours:           input.Hours,
			TaskDescription: input.TaskDescription,
			WorkType:        input.WorkType,
			Status:          status,
		})
	}

	var inserted []timesheet.Entry
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.entries.DeleteWeek(txCtx, email, weekStart); err != nil {
			return fmt.Errorf("failed to clear existing week: %w", err)
		}
		inserted, err = s.entries.InsertEntries(txCtx, newEntries)
		if err != nil {
			return fmt.Errorf("failed to insert entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

// GetWeek implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetWeek(ctx context.Context, email string, weekStartDate string) ([]timesheet.Entry, error) {
	weekStart, err := time.Parse(time.DateOnly, weekStartDate)
	if err != nil {
		return nil, timesheet.ErrInvalidDateFormat
	}

	entries, err := s.entries.GetWeek(ctx, email, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week: %w", err)
	}
	return entries, nil
}
