package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/JonMunkholm/wfm/internal/metrics"
)

// Import opens the workbook at path and runs one import pass over it.
func (s *Service) Import(ctx context.Context, path string) (ImportResult, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return ImportResult{}, err
	}
	defer wb.Close()

	return s.ImportWorkbook(ctx, wb)
}

// ImportWorkbook wipes and reloads every registered table group from wb.
//
// One connection is held for the whole pass. Groups are loaded in
// registration order, each in its own transaction. The first failure stops
// the pass: groups already loaded stay committed and later groups keep their
// previous rows. The returned error is an *ImportError, or
// ErrImportInProgress when another pass holds the import slot too long.
func (s *Service) ImportWorkbook(ctx context.Context, wb Workbook) (ImportResult, error) {
	result := ImportResult{Workbook: wb.Name(), Tables: []TableResult{}}

	if err := s.imports.Acquire(ctx); err != nil {
		return result, err
	}
	defer s.imports.Release()

	start := time.Now()

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return result, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	runID, err := startRun(ctx, conn, wb.Name(), start)
	if err != nil {
		return result, err
	}
	result.RunID = runID

	log := slog.With("run_id", runID, "workbook", wb.Name())
	log.Info("import started", "tables", TableCount())

	var runErr error
	for _, def := range All() {
		n, err := s.loadTable(ctx, conn, wb, def)
		if err != nil {
			runErr = &ImportError{
				Table:     def.Info.Key,
				Completed: append([]TableResult(nil), result.Tables...),
				Err:       err,
			}
			log.Error("table import failed", "table", def.Info.Key, "error", err)
			break
		}

		result.Tables = append(result.Tables, TableResult{
			Table:    def.Info.Key,
			Inserted: n,
			Fixture:  def.IsFixture(),
		})
		metrics.ImportRows.WithLabelValues(def.Info.Key).Add(float64(n))
		log.Info("table loaded", "table", def.Info.Key, "rows", n)
	}

	// The history row is written even when ctx was cancelled mid-pass.
	if err := finishRun(context.WithoutCancel(ctx), conn, runID, result, runErr, time.Now()); err != nil {
		if runErr == nil {
			runErr = err
		} else {
			log.Error("failed to record import outcome", "error", err)
		}
	}

	status := RunSucceeded
	if runErr != nil {
		status = RunFailed
	}
	metrics.ImportRuns.WithLabelValues(status).Inc()
	metrics.ImportDuration.Observe(time.Since(start).Seconds())

	log.Info("import finished",
		"status", status,
		"tables_loaded", len(result.Tables),
		"rows_inserted", result.TotalRows(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, runErr
}

// loadTable replaces the contents of one table group inside a transaction.
// Extraction happens first so a missing sheet never wipes the table.
func (s *Service) loadTable(ctx context.Context, conn *sqlx.Conn, wb Workbook, def TableDefinition) (int, error) {
	records, err := s.records(wb, def)
	if err != nil {
		return 0, err
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.dialect.clearTable(ctx, tx, def.Info.Key); err != nil {
		return 0, fmt.Errorf("clear %s: %w", def.Info.Key, err)
	}

	if len(records) > 0 {
		stmt, err := tx.PreparexContext(ctx, tx.Rebind(insertSQL(def)))
		if err != nil {
			return 0, fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, rec := range records {
			if _, err := stmt.ExecContext(ctx, rec...); err != nil {
				return 0, fmt.Errorf("insert row %d: %w", i+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit %s: %w", def.Info.Key, err)
	}
	return len(records), nil
}

// clearTable empties table and restarts its id sequence, so every pass
// numbers rows from 1.
func (d dialect) clearTable(ctx context.Context, tx *sqlx.Tx, table string) error {
	if d.restartIdentity {
		_, err := tx.ExecContext(ctx, "TRUNCATE "+quoteIdentifier(table)+" RESTART IDENTITY")
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+quoteIdentifier(table)); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", table)
	return err
}

// records produces the coerced rows of one table group.
func (s *Service) records(wb Workbook, def TableDefinition) ([]Record, error) {
	if def.IsFixture() {
		return loadFixture(def)
	}
	res, err := Extract(wb, def)
	if err != nil {
		return nil, err
	}
	if res.Skipped > 0 {
		slog.Debug("rows skipped", "table", def.Info.Key, "skipped", res.Skipped, "scanned", res.Scanned)
	}
	return res.Records, nil
}

// insertSQL builds the parameterized insert for a table group.
func insertSQL(def TableDefinition) string {
	names := make([]string, len(def.Columns))
	for i, c := range def.Columns {
		names[i] = c.Name
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdentifier(def.Info.Key), quoteColumns(names), placeholders)
}
