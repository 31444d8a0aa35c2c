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

	"github.com/Bhaumik-99/ethara-hrm/internal/config"
	appHTTP "github.com/Bhaumik-99/ethara-hrm/internal/handler/http"
	"github.com/Bhaumik-99/ethara-hrm/internal/repository"
	attendanceService "github.com/Bhaumik-99/ethara-hrm/internal/service/attendance"
	dashboardService "github.com/Bhaumik-99/ethara-hrm/internal/service/dashboard"
	employeeService "github.com/Bhaumik-99/ethara-hrm/internal/service/employee"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "storage", cfg.Storage.Type, "error", err)
		os.Exit(1)
	}
	defer repos.Close()

	employeeSvc := employeeService.NewEmployeeService(repos.Employee)
	attendanceSvc := attendanceService.NewAttendanceService(repos.Attendance, repos.Employee)
	dashboardSvc := dashboardService.NewDashboardService(repos.Dashboard, cfg.App.RecentActivityLimit)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, nil)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.CORSOrigins,
			LogLevel:       cfg.SlogLevel(),
		},
		logger,
		employeeHandler,
		attendanceHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "storage", cfg.Storage.Type)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
