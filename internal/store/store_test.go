package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/wfm/internal/config"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "wfm.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer db.Close()

	if db.DriverName() != config.DriverSQLite {
		t.Errorf("DriverName() = %q, want %q", db.DriverName(), config.DriverSQLite)
	}

	var mode string
	if err := db.GetContext(ctx, &mode, "PRAGMA journal_mode"); err != nil {
		t.Fatalf("read journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "nope", URL: "x", MaxOpenConns: 1})
	if err == nil {
		t.Fatal("Open() expected error for unregistered driver")
	}
}
