package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/chronoworks/timesheet-backend-go/internal/handler/http/response"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	SaveWeek(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// SaveWeek implements TimesheetHandler. The owning email and the target
// status ride on the query string; the week payload is the JSON body.
func (h *TimesheetHandlerImpl) SaveWeek(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !validator.IsValidEmail(email) {
		response.BadRequest(w, "email query parameter must be a valid email address", nil)
		return
	}

	status := timesheet.StatusPending
	if s := r.URL.Query().Get("status"); s != "" {
		status = timesheet.Status(s)
		if !status.IsValid() {
			response.BadRequest(w, "status must be one of Pending, Submitted, Approved, Denied", nil)
			return
		}
	}

	var saveReq timesheet.SaveWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("SaveWeek decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := saveReq.Validate(); err != nil {
		slog.Error("SaveWeek validate error", "email", email, "error", err)
		response.HandleError(w, err)
		return
	}

	entries, err := h.timesheetService.SaveWeek(r.Context(), email, saveReq, status)
	if err != nil {
		slog.Error("SaveWeek service error", "email", email, "week_start_date", saveReq.WeekStartDate, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Week saved", "email", email, "week_start_date", saveReq.WeekStartDate, "entries", len(entries), "status", status)
	response.Success(w, timesheet.NewEntryResponses(entries))
}

// GetWeek implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	weekStartDate := r.URL.Query().Get("week_start_date")

	entries, err := h.timesheetService.GetWeek(r.Context(), email, weekStartDate)
	if err != nil {
		slog.Error("GetWeek service error", "email", email, "week_start_date", weekStartDate, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheet.NewEntryResponses(entries))
}
