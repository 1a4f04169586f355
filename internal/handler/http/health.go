package http

import (
	"log/slog"
	"net/http"

	"github.com/chronoworks/timesheet-backend-go/internal/handler/http/response"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/database"
)

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type HealthHandlerImpl struct {
	db *database.DB
}

// NewHealthHandler accepts a nil db: the process runs degraded instead of
// crashing when no database is configured, and the health check reports it.
func NewHealthHandler(db *database.DB) HealthHandler {
	return &HealthHandlerImpl{db: db}
}

// Health implements HealthHandler.
func (h *HealthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		response.ServiceUnavailable(w, "DATABASE_URL not configured")
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("Health check failed", "error", err)
		response.ServiceUnavailable(w, "Database unavailable")
		return
	}

	response.Success(w, map[string]string{
		"status":   "ok",
		"database": "connected",
	})
}
