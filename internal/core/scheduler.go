package core

// scheduler.go keeps the reporting tables in step with the workbook on disk
// while the API server runs.
//
// Each cycle:
//  1. Re-imports the configured workbook if its modification time changed
//     since the last successful pass (the first cycle always imports)
//  2. Prunes import_runs down to the most recent KeepRuns rows
//
// Failures are logged and retried on the next tick; they never stop the
// server.

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// DefaultKeepRuns is how many import_runs rows survive pruning.
const DefaultKeepRuns = 500

// SchedulerConfig holds the settings of the background import job.
type SchedulerConfig struct {
	Workbook string        // Path of the workbook to import
	Interval time.Duration // How often to check it
	KeepRuns int           // History rows to keep (default: 500)
}

// StartImportScheduler imports cfg.Workbook immediately, then checks it
// every cfg.Interval until ctx is cancelled. Run it in its own goroutine.
func (s *Service) StartImportScheduler(ctx context.Context, cfg SchedulerConfig) {
	if cfg.KeepRuns <= 0 {
		cfg.KeepRuns = DefaultKeepRuns
	}
	log := slog.With("workbook", cfg.Workbook)
	log.Info("import scheduler started", "interval", cfg.Interval, "keep_runs", cfg.KeepRuns)

	var lastMod time.Time
	s.runImportJob(ctx, log, cfg, &lastMod)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("import scheduler stopped")
			return
		case <-ticker.C:
			s.runImportJob(ctx, log, cfg, &lastMod)
		}
	}
}

// runImportJob performs one check, import and prune cycle.
func (s *Service) runImportJob(ctx context.Context, log *slog.Logger, cfg SchedulerConfig, lastMod *time.Time) {
	info, err := os.Stat(cfg.Workbook)
	if err != nil {
		log.Error("workbook not readable", "error", err)
		return
	}

	if info.ModTime().Equal(*lastMod) {
		log.Debug("workbook unchanged, skipping import")
	} else {
		result, err := s.Import(ctx, cfg.Workbook)
		if err != nil {
			log.Error("scheduled import failed", "error", err, "code", MapError(err).Code)
		} else {
			*lastMod = info.ModTime()
			log.Info("scheduled import completed",
				"run_id", result.RunID,
				"tables", len(result.Tables),
				"rows", result.TotalRows(),
			)
		}
	}

	pruned, err := s.PruneImportRuns(ctx, cfg.KeepRuns)
	if err != nil {
		log.Error("prune import history failed", "error", err)
		return
	}
	if pruned > 0 {
		log.Info("pruned import history", "rows", pruned)
	}
}

// PruneImportRuns deletes all but the keep most recent import_runs rows.
func (s *Service) PruneImportRuns(ctx context.Context, keep int) (int64, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	query := conn.Rebind(fmt.Sprintf(
		"DELETE FROM %[1]s WHERE id NOT IN (SELECT id FROM %[1]s ORDER BY started_at DESC, id LIMIT ?)",
		importRunsTable,
	))
	res, err := conn.ExecContext(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("prune import runs: %w", err)
	}
	return res.RowsAffected()
}

// WaitForImport blocks until no import pass is running or ctx is done.
func (s *Service) WaitForImport(ctx context.Context) error {
	if err := s.imports.Acquire(ctx); err != nil {
		return err
	}
	s.imports.Release()
	return nil
}
