package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jmoiron/sqlx"
)

// Import run statuses.
const (
	RunRunning   = "running"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// DefaultRunLimit caps ListImportRuns when no limit is given.
const DefaultRunLimit = 50

// ImportRun is one row of the import history.
type ImportRun struct {
	ID           string      `db:"id" json:"id"`
	FileName     string      `db:"file_name" json:"fileName"`
	StartedAt    time.Time   `db:"started_at" json:"startedAt"`
	FinishedAt   *time.Time  `db:"finished_at" json:"finishedAt"`
	Status       string      `db:"status" json:"status"`
	TablesLoaded int         `db:"tables_loaded" json:"tablesLoaded"`
	RowsInserted int         `db:"rows_inserted" json:"rowsInserted"`
	Error        pgtype.Text `db:"error" json:"error"`
}

// startRun inserts a running history row and returns its id.
func startRun(ctx context.Context, q DBTX, fileName string, now time.Time) (string, error) {
	id := uuid.New().String()
	query := q.Rebind(fmt.Sprintf(
		"INSERT INTO %s (id, file_name, started_at, status) VALUES (?, ?, ?, ?)",
		importRunsTable,
	))
	if _, err := q.ExecContext(ctx, query, id, fileName, now.UTC(), RunRunning); err != nil {
		return "", fmt.Errorf("record import start: %w", err)
	}
	return id, nil
}

// finishRun stamps a history row with its outcome.
func finishRun(ctx context.Context, q DBTX, id string, result ImportResult, runErr error, now time.Time) error {
	status := RunSucceeded
	errText := pgtype.Text{}
	if runErr != nil {
		status = RunFailed
		errText = pgtype.Text{String: runErr.Error(), Valid: true}
	}

	query := q.Rebind(fmt.Sprintf(
		"UPDATE %s SET finished_at = ?, status = ?, tables_loaded = ?, rows_inserted = ?, error = ? WHERE id = ?",
		importRunsTable,
	))
	_, err := q.ExecContext(ctx, query, now.UTC(), status, len(result.Tables), result.TotalRows(), errText, id)
	if err != nil {
		return fmt.Errorf("record import finish: %w", err)
	}
	return nil
}

// ListImportRuns returns the most recent import passes, newest first.
func (s *Service) ListImportRuns(ctx context.Context, limit int) ([]ImportRun, error) {
	if limit <= 0 {
		limit = DefaultRunLimit
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	query := conn.Rebind(fmt.Sprintf(
		"SELECT id, file_name, started_at, finished_at, status, tables_loaded, rows_inserted, error FROM %s ORDER BY started_at DESC, id LIMIT ?",
		importRunsTable,
	))

	runs := []ImportRun{}
	if err := sqlx.SelectContext(ctx, conn, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("list import runs: %w", err)
	}
	return runs, nil
}
