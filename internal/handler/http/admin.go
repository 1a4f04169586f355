package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/report"
	"github.com/chronoworks/timesheet-backend-go/internal/domain/review"
	"github.com/chronoworks/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/chronoworks/timesheet-backend-go/internal/handler/http/response"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/validator"
)

// defaultAdminIdentity is recorded on approvals and denials when the request
// carries neither an admin_email parameter nor a bearer token.
const defaultAdminIdentity = "admin@system.com"

type AdminHandler interface {
	ListSubmittedWeeks(w http.ResponseWriter, r *http.Request)
	ApproveWeek(w http.ResponseWriter, r *http.Request)
	RejectWeek(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetReportStats(w http.ResponseWriter, r *http.Request)
	GetFilteredReports(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	reviewService review.ReviewService
	reportService report.ReportService
}

func NewAdminHandler(reviewService review.ReviewService, reportService report.ReportService) AdminHandler {
	return &AdminHandlerImpl{
		reviewService: reviewService,
		reportService: reportService,
	}
}

// ListSubmittedWeeks implements AdminHandler.
func (h *AdminHandlerImpl) ListSubmittedWeeks(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.reviewService.ListSubmittedWeeks(r.Context())
	if err != nil {
		slog.Error("ListSubmittedWeeks service error", "error", err)
		response.HandleError(w, err)
		return
	}
	if weeks == nil {
		weeks = []review.SubmittedWeek{}
	}
	response.Success(w, weeks)
}

// ApproveWeek implements AdminHandler.
func (h *AdminHandlerImpl) ApproveWeek(w http.ResponseWriter, r *http.Request) {
	var actionReq review.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&actionReq); err != nil {
		slog.Error("ApproveWeek decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := actionReq.Validate(); err != nil {
		slog.Error("ApproveWeek validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	adminEmail := adminIdentity(r)
	if err := h.reviewService.ApproveWeek(r.Context(), actionReq, adminEmail); err != nil {
		slog.Error("ApproveWeek service error", "email", actionReq.Email, "week_start_date", actionReq.WeekStartDate, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Week approved", "email", actionReq.Email, "week_start_date", actionReq.WeekStartDate, "approved_by", adminEmail)
	response.SuccessWithMessage(w, "Timesheet approved successfully", nil)
}

// RejectWeek implements AdminHandler. The reason check happens before the
// service call so a missing reason is a plain 400, not a validation envelope.
func (h *AdminHandlerImpl) RejectWeek(w http.ResponseWriter, r *http.Request) {
	var actionReq review.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&actionReq); err != nil {
		slog.Error("RejectWeek decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := actionReq.Validate(); err != nil {
		slog.Error("RejectWeek validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if actionReq.Reason == nil || validator.IsEmpty(*actionReq.Reason) {
		response.BadRequest(w, "Rejection reason required", nil)
		return
	}

	adminEmail := adminIdentity(r)
	if err := h.reviewService.RejectWeek(r.Context(), actionReq, adminEmail); err != nil {
		slog.Error("RejectWeek service error", "email", actionReq.Email, "week_start_date", actionReq.WeekStartDate, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Week rejected", "email", actionReq.Email, "week_start_date", actionReq.WeekStartDate, "denied_by", adminEmail)
	response.SuccessWithMessage(w, "Timesheet rejected successfully", nil)
}

// GetStats implements AdminHandler.
func (h *AdminHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	stats, err := h.reportService.GetStats(r.Context(), dateRange)
	if err != nil {
		slog.Error("GetStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// GetReportStats implements AdminHandler.
func (h *AdminHandlerImpl) GetReportStats(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	totals, err := h.reportService.GetReportStats(r.Context(), dateRange)
	if err != nil {
		slog.Error("GetReportStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, totals)
}

// GetFilteredReports implements AdminHandler.
func (h *AdminHandlerImpl) GetFilteredReports(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	statusLabel := reportStatusLabel(r)
	rows, err := h.reportService.GetReportList(r.Context(), statusLabel, dateRange)
	if err != nil {
		slog.Error("GetFilteredReports service error", "status", statusLabel, "error", err)
		response.HandleError(w, err)
		return
	}
	if rows == nil {
		rows = []report.ReportRow{}
	}
	response.Success(w, rows)
}

// DownloadReport implements AdminHandler. Streams the workbook as an
// attachment rather than the JSON envelope.
func (h *AdminHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	statusLabel := reportStatusLabel(r)
	workbook, filename, err := h.reportService.ExportDetailedReport(r.Context(), statusLabel, dateRange)
	if err != nil {
		slog.Error("DownloadReport service error", "status", statusLabel, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		slog.Error("DownloadReport write error", "error", err)
	}
}

// adminIdentity resolves who performed the action: the admin_email query
// parameter, else the bearer token's email, else the legacy default.
func adminIdentity(r *http.Request) string {
	if email := r.URL.Query().Get("admin_email"); email != "" {
		return email
	}
	if email, ok := middleware.IdentityFromContext(r.Context()); ok {
		return email
	}
	return defaultAdminIdentity
}

func reportStatusLabel(r *http.Request) string {
	if label := r.URL.Query().Get("status"); label != "" {
		return label
	}
	return "Approved"
}

func parseDateRange(r *http.Request) (report.DateRange, error) {
	var dateRange report.DateRange

	if from := r.URL.Query().Get("from_date"); from != "" {
		parsed, ok := validator.IsValidDate(from)
		if !ok {
			return report.DateRange{}, fmt.Errorf("from_date must be a valid date in YYYY-MM-DD format")
		}
		dateRange.From = &parsed
	}

	if to := r.URL.Query().Get("to_date"); to != "" {
		parsed, ok := validator.IsValidDate(to)
		if !ok {
			return report.DateRange{}, fmt.Errorf("to_date must be a valid date in YYYY-MM-DD format")
		}
		dateRange.To = &parsed
	}

	return dateRange, nil
}
