// Package store opens the relational store behind the reporting tables.
//
// Two database/sql drivers are supported: mattn/go-sqlite3 (the default,
// a single local file) and pgx's stdlib adapter for PostgreSQL. Callers get
// a *sqlx.DB; it is the explicit store handle passed to the core service.
package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/JonMunkholm/wfm/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "github.com/mattn/go-sqlite3"    // registers the "sqlite3" driver
)

// Open connects to the configured store and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		// WAL lets the API keep reading while an import rewrites a table.
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	return db, nil
}

// OpenSQLite is a shortcut for tests and tools that only need a local file.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	return Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          path,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	})
}
