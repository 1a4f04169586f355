package report

import "errors"

var (
	ErrInvalidStatusFilter = errors.New("Invalid report status filter")
	ErrNoReportData        = errors.New("No data available for the selected period")
)
