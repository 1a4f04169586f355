package report

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/report"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/spreadsheet"
)

const exportSheetName = "Database_Export"

var exportHeaders = []string{
	"entry_id", "email", "week_start_date", "date", "hours",
	"task_description", "work_type", "status", "rejection_reason",
	"created_at", "updated_at", "employee_name", "employee_id",
}

type ReportServiceImpl struct {
	reports report.ReportRepository
}

func NewReportService(reports report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reports: reports}
}

// GetStats implements report.ReportService.
func (s *ReportServiceImpl) GetStats(ctx context.Context, dateRange report.DateRange) (report.WeekStats, error) {
	stats, err := s.reports.GetWeekStats(ctx, dateRange)
	if err != nil {
		return report.WeekStats{}, fmt.Errorf("failed to compute week stats: %w", err)
	}
	return stats, nil
}

// GetReportStats implements report.ReportService.
func (s *ReportServiceImpl) GetReportStats(ctx context.Context, dateRange report.DateRange) (report.HourTotals, error) {
	totals, err := s.reports.GetHourTotals(ctx, dateRange)
	if err != nil {
		return report.HourTotals{}, fmt.Errorf("failed to compute hour totals: %w", err)
	}
	return totals, nil
}

// GetReportList implements report.ReportService.
func (s *ReportServiceImpl) GetReportList(ctx context.Context, statusLabel string, dateRange report.DateRange) ([]report.ReportRow, error) {
	status, err := report.MapStatusFilter(statusLabel)
	if err != nil {
		return nil, err
	}

	groups, err := s.reports.GetGroupedWeeks(ctx, status, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report rows: %w", err)
	}

	rows := make([]report.ReportRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, report.ReportRow{
			Email:         g.Email,
			WeekStartDate: g.WeekStartDate.Format(time.DateOnly),
			Hours:         fmt.Sprintf("%.1fh", g.Hours),
			Name:          g.Name,
			EmployeeID:    g.EmployeeID,
			Status:        statusLabel,
		})
	}
	return rows, nil
}

// ExportDetailedReport implements report.ReportService. It returns the
// serialized workbook and the download filename.
func (s *ReportServiceImpl) ExportDetailedReport(ctx context.Context, statusLabel string, dateRange report.DateRange) ([]byte, string, error) {
	status, err := report.MapStatusFilter(statusLabel)
	if err != nil {
		return nil, "", err
	}

	details, err := s.reports.GetDetailedRows(ctx, status, dateRange)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch export rows: %w", err)
	}
	if len(details) == 0 {
		return nil, "", report.ErrNoReportData
	}

	rows := make([][]interface{}, 0, len(details))
	for _, d := range details {
		rows = append(rows, exportRow(d))
	}

	workbook, err := spreadsheet.Build(exportSheetName, exportHeaders, rows)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook: %w", err)
	}

	from := "all"
	if dateRange.From != nil {
		from = dateRange.From.Format(time.DateOnly)
	}
	filename := fmt.Sprintf("DB_Export_%s_%s.xlsx", statusLabel, from)

	return workbook, filename, nil
}

func exportRow(d report.DetailRow) []interface{} {
	rejectionReason := ""
	if d.Entry.RejectionReason != nil {
		rejectionReason = *d.Entry.RejectionReason
	}
	return []interface{}{
		d.Entry.EntryID,
		d.Entry.Email,
		d.Entry.WeekStartDate.Format(time.DateOnly),
		d.Entry.Date.Format(time.DateOnly),
		d.Entry.Hours,
		d.Entry.TaskDescription,
		string(d.Entry.WorkType),
		string(d.Entry.Status),
		rejectionReason,
		d.Entry.CreatedAt.Format(time.RFC3339),
		d.Entry.UpdatedAt.Format(time.RFC3339),
		d.EmployeeName,
		d.EmployeeID,
	}
}
