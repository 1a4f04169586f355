package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/report"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeReportRepo struct {
	stats   report.WeekStats
	totals  report.HourTotals
	grouped map[timesheet.Status][]report.GroupedWeek
	details map[timesheet.Status][]report.DetailRow
}

func (r *fakeReportRepo) GetWeekStats(_ context.Context, _ report.DateRange) (report.WeekStats, error) {
	return r.stats, nil
}

func (r *fakeReportRepo) GetHourTotals(_ context.Context, _ report.DateRange) (report.HourTotals, error) {
	return r.totals, nil
}

func (r *fakeReportRepo) GetGroupedWeeks(_ context.Context, status timesheet.Status, _ report.DateRange) ([]report.GroupedWeek, error) {
	return r.grouped[status], nil
}

func (r *fakeReportRepo) GetDetailedRows(_ context.Context, status timesheet.Status, _ report.DateRange) ([]report.DetailRow, error) {
	return r.details[status], nil
}

func TestReportService_GetReportList_MapsLabelAndFormatsHours(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeReportRepo{
		grouped: map[timesheet.Status][]report.GroupedWeek{
			// The external "Pending" label selects Submitted entries.
			timesheet.StatusSubmitted: {
				{
					Email:         "ada@example.com",
					WeekStartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
					Hours:         38.5,
					Name:          "Ada Lovelace",
					EmployeeID:    "EMP001",
				},
			},
		},
	}
	svc := NewReportService(repo)

	rows, err := svc.GetReportList(ctx, "Pending", report.DateRange{})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "38.5h", rows[0].Hours)
	assert.Equal(t, "2025-01-06", rows[0].WeekStartDate)
	assert.Equal(t, "Pending", rows[0].Status)
}

func TestReportService_GetReportList_WholeHoursKeepOneDecimal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeReportRepo{
		grouped: map[timesheet.Status][]report.GroupedWeek{
			timesheet.StatusApproved: {
				{Email: "ada@example.com", WeekStartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), Hours: 40},
			},
		},
	}
	svc := NewReportService(repo)

	rows, err := svc.GetReportList(ctx, "Approved", report.DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "40.0h", rows[0].Hours)
}

func TestReportService_GetReportList_InvalidStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewReportService(&fakeReportRepo{})

	_, err := svc.GetReportList(ctx, "Submitted", report.DateRange{})
	assert.ErrorIs(t, err, report.ErrInvalidStatusFilter)
}

func TestReportService_ExportDetailedReport_EmptyData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewReportService(&fakeReportRepo{})

	_, _, err := svc.ExportDetailedReport(ctx, "Approved", report.DateRange{})
	assert.ErrorIs(t, err, report.ErrNoReportData)
}

func TestReportService_ExportDetailedReport_BuildsWorkbook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reason := "late submission"
	repo := &fakeReportRepo{
		details: map[timesheet.Status][]report.DetailRow{
			timesheet.StatusDenied: {
				{
					Entry: timesheet.Entry{
						EntryID:         "e-1",
						Email:           "ada@example.com",
						WeekStartDate:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
						Date:            time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
						Hours:           7.5,
						TaskDescription: "API development",
						WorkType:        timesheet.WorkTypeBillable,
						Status:          timesheet.StatusDenied,
						RejectionReason: &reason,
					},
					EmployeeName: "Ada Lovelace",
					EmployeeID:   "EMP001",
				},
			},
		},
	}
	svc := NewReportService(repo)

	workbook, filename, err := svc.ExportDetailedReport(ctx, "Rejected", report.DateRange{})

	require.NoError(t, err)
	assert.Equal(t, "DB_Export_Rejected_all.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Database_Export")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "entry_id", rows[0][0])
	assert.Equal(t, "e-1", rows[1][0])
	assert.Equal(t, "ada@example.com", rows[1][1])
	assert.Equal(t, "late submission", rows[1][8])
	assert.Equal(t, "Ada Lovelace", rows[1][11])
}

func TestReportService_ExportDetailedReport_FilenameWithFromDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		details: map[timesheet.Status][]report.DetailRow{
			timesheet.StatusApproved: {
				{Entry: timesheet.Entry{EntryID: "e-1", Status: timesheet.StatusApproved}},
			},
		},
	}
	svc := NewReportService(repo)

	_, filename, err := svc.ExportDetailedReport(ctx, "Approved", report.DateRange{From: &from})
	require.NoError(t, err)
	assert.Equal(t, "DB_Export_Approved_2025-01-01.xlsx", filename)
}

func TestReportService_GetStats_Passthrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeReportRepo{
		stats: report.WeekStats{TotalHours: 120.5, Approved: 3, Pending: 2, Rejected: 1, Total: 6},
	}
	svc := NewReportService(repo)

	stats, err := svc.GetStats(ctx, report.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, repo.stats, stats)
}
