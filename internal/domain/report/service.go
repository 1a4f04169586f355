package report

import "context"

type ReportService interface {
	GetStats(ctx context.Context, dateRange DateRange) (WeekStats, error)
	GetReportStats(ctx context.Context, dateRange DateRange) (HourTotals, error)
	// GetReportList returns grouped report rows for the external status
	// label, newest week first.
	GetReportList(ctx context.Context, statusLabel string, dateRange DateRange) ([]ReportRow, error)
	// ExportDetailedReport builds an xlsx workbook of every raw row matching
	// the filter. ErrNoReportData when nothing matches.
	ExportDetailedReport(ctx context.Context, statusLabel string, dateRange DateRange) ([]byte, string, error)
}
