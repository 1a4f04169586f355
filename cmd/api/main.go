package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chronoworks/timesheet-backend-go/internal/config"
	appHTTP "github.com/chronoworks/timesheet-backend-go/internal/handler/http"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/database"
	"github.com/chronoworks/timesheet-backend-go/internal/pkg/jwt"
	"github.com/chronoworks/timesheet-backend-go/internal/repository/postgresql"
	authService "github.com/chronoworks/timesheet-backend-go/internal/service/auth"
	reportService "github.com/chronoworks/timesheet-backend-go/internal/service/report"
	reviewService "github.com/chronoworks/timesheet-backend-go/internal/service/review"
	timesheetService "github.com/chronoworks/timesheet-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)

	// A missing or unreachable database degrades the service instead of
	// killing it: the health check reports the outage and the API answers
	// 503 until a restart with a working DATABASE_URL.
	dsn := cfg.DatabaseURL()
	if dsn == "" {
		slog.Error("DATABASE_URL not set, starting degraded")
		serveDegraded(port)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		slog.Error("Error connecting to database, starting degraded", "error", err)
		serveDegraded(port)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db.Pool)
	entryRepo := postgresql.NewEntryRepository(db.Pool)
	reviewRepo := postgresql.NewReviewRepository(db.Pool)
	reportRepo := postgresql.NewReportRepository(db.Pool)
	txManager := postgresql.NewTxManager(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(employeeRepo, jwtSvc)
	timesheetSvc := timesheetService.NewTimesheetService(txManager, entryRepo)
	reviewSvc := reviewService.NewReviewService(txManager, reviewRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	adminHandler := appHTTP.NewAdminHandler(reviewSvc, reportSvc)
	healthHandler := appHTTP.NewHealthHandler(db)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		timesheetHandler,
		adminHandler,
		healthHandler,
	)

	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func serveDegraded(port string) {
	router := appHTTP.NewDegradedRouter(appHTTP.NewHealthHandler(nil))
	fmt.Printf("Server running degraded at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
