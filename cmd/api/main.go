package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	advanceStore "github.com/MrJamesThe3rd/nomina/internal/advance/store"
	"github.com/MrJamesThe3rd/nomina/internal/config"
	"github.com/MrJamesThe3rd/nomina/internal/database"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	employeeStore "github.com/MrJamesThe3rd/nomina/internal/employee/store"
	nominaHttp "github.com/MrJamesThe3rd/nomina/internal/http"
	advanceHandler "github.com/MrJamesThe3rd/nomina/internal/http/advance"
	employeeHandler "github.com/MrJamesThe3rd/nomina/internal/http/employee"
	importHandler "github.com/MrJamesThe3rd/nomina/internal/http/importsheet"
	noveltyHandler "github.com/MrJamesThe3rd/nomina/internal/http/novelty"
	payrollHandler "github.com/MrJamesThe3rd/nomina/internal/http/payroll"
	settingsHandler "github.com/MrJamesThe3rd/nomina/internal/http/settings"
	"github.com/MrJamesThe3rd/nomina/internal/importer"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	noveltyStore "github.com/MrJamesThe3rd/nomina/internal/novelty/store"
	"github.com/MrJamesThe3rd/nomina/internal/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/scheduler"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
	settingsStore "github.com/MrJamesThe3rd/nomina/internal/settings/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := nominaHttp.NewLogger(cfg.App.Name, cfg.LogLevel())
	slog.SetDefault(logger)

	db, err := database.New(context.Background(), cfg.ConnectionString(), cfg.DatabaseOptions())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	var (
		employeeService = employee.NewService(employeeStore.New(db))
		noveltyService  = novelty.NewService(noveltyStore.New(db))
		advanceService  = advance.NewService(advanceStore.New(db))
		settingsService = settings.NewService(settingsStore.New(db))
		payrollService  = payroll.NewService(employeeService, noveltyService, advanceService, settingsService)
		importService   = importer.NewService(employeeService, noveltyService, advanceService)
	)

	router := nominaHttp.New(logger, cfg.Server.AllowedOrigins, nominaHttp.Handlers{
		Employees: employeeHandler.NewHandler(employeeService),
		Novelties: noveltyHandler.NewHandler(noveltyService),
		Advances:  advanceHandler.NewHandler(advanceService),
		Settings:  settingsHandler.NewHandler(settingsService),
		Payroll:   payrollHandler.NewHandler(payrollService),
		Import:    importHandler.NewHandler(importService, cfg.Server.MaxUploadBytes),
	})

	jobs := scheduler.New()
	if err := scheduler.NewReconcileJob(noveltyService).Register(jobs, cfg.Payroll.ReconcileInterval); err != nil {
		slog.Error("failed to schedule reconciliation", "error", err)
		os.Exit(1)
	}
	jobs.Start()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "port", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	jobs.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
