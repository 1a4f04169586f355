package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/chronoworks/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/chronoworks/timesheet-backend-go/internal/handler/http/response"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	timesheetHandler TimesheetHandler,
	adminHandler AdminHandler,
	healthHandler HealthHandler,
) *chi.Mux {
	r := newBaseRouter()

	r.Get("/health", healthHandler.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/timesheets", func(r chi.Router) {
		r.Post("/save", timesheetHandler.SaveWeek)
		r.Get("/week", timesheetHandler.GetWeek)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.BearerIdentity)

		r.Get("/submitted-weeks", adminHandler.ListSubmittedWeeks)
		r.Post("/approve", adminHandler.ApproveWeek)
		r.Post("/reject", adminHandler.RejectWeek)
		r.Get("/stats", adminHandler.GetStats)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/stats", adminHandler.GetReportStats)
			r.Get("/filtered", adminHandler.GetFilteredReports)
			r.Get("/download", adminHandler.DownloadReport)
		})
	})

	return r
}

// NewDegradedRouter serves when no database is reachable at startup: the
// health check reports the outage and every API route answers 503 instead of
// the process crashing.
func NewDegradedRouter(healthHandler HealthHandler) *chi.Mux {
	r := newBaseRouter()

	r.Get("/health", healthHandler.Health)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.ServiceUnavailable(w, "Database unavailable")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.ServiceUnavailable(w, "Database unavailable")
	})

	return r
}

func newBaseRouter() *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	return r
}
