package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/job-board/internal/config"
	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/handler"
	"github.com/msomdec/job-board/internal/repository/memory"
	"github.com/msomdec/job-board/internal/repository/postgres"
	"github.com/msomdec/job-board/internal/repository/sqlite"
	"github.com/msomdec/job-board/internal/service"
	"github.com/msomdec/job-board/internal/store"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		slog.Error("failed to open database", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied", "driver", cfg.DatabaseDriver)

	st := store.New(db)
	jobService := service.NewJobService(st)
	services := handler.Services{
		Sessions:     service.NewSessionService(st, cfg.SessionSecret),
		Profiles:     service.NewProfileService(st),
		Jobs:         jobService,
		Applications: service.NewApplicationService(st, jobService),
		CVs:          service.NewCVService(st),
	}

	router := handler.NewRouter(services, handler.Options{
		CookieSecure: cfg.CookieSecure,
		CORSOrigins:  cfg.CORSOrigins,
		LoginLimiter: service.NewTokenBucket(ctx, cfg.LoginRate, cfg.LoginBurst),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openDatabase(ctx context.Context, cfg *config.Config) (domain.Database, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		return sqlite.New(cfg.DatabasePath)
	case config.DriverPostgres:
		return postgres.Connect(ctx, cfg.DatabaseURL, postgres.Options{})
	case config.DriverMemory:
		slog.Warn("using in-memory storage; data is lost on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}
