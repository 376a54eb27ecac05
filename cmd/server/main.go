package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/wfm/internal/config"
	"github.com/JonMunkholm/wfm/internal/core"
	_ "github.com/JonMunkholm/wfm/internal/core/tables" // Register all tables
	"github.com/JonMunkholm/wfm/internal/logging"
	"github.com/JonMunkholm/wfm/internal/store"
	"github.com/JonMunkholm/wfm/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	ctx := context.Background()
	db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	service := core.NewService(db)

	// Tables must exist before the first query even if no import has run yet.
	if err := service.EnsureSchema(ctx); err != nil {
		slog.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	slog.Info("tables registered",
		"count", core.TableCount(),
		"groups", len(core.Groups()),
	)

	server := web.NewServer(service, cfg)

	// Create cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	if cfg.Import.Interval > 0 {
		go service.StartImportScheduler(jobCtx, core.SchedulerConfig{
			Workbook: cfg.Import.Workbook,
			Interval: cfg.Import.Interval,
			KeepRuns: cfg.Import.KeepRuns,
		})
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		// Stop background jobs
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// A cancelled pass still records its outcome; let it finish.
		if service.ImportRunning() {
			slog.Info("waiting for import to finish")
			if err := service.WaitForImport(shutdownCtx); err != nil {
				slog.Warn("import did not finish in time", "error", err)
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
