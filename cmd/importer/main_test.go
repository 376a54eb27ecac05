package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/wfm/internal/core"
)

func TestReport(t *testing.T) {
	result := core.ImportResult{
		RunID:    "run-1",
		Workbook: "wfm.xlsx",
		Tables: []core.TableResult{
			{Table: "cost_summary", Inserted: 3},
			{Table: "ta_leader_positions", Inserted: 15, Fixture: true},
		},
	}

	var buf bytes.Buffer
	if err := report(&buf, result, false); err != nil {
		t.Fatalf("report() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if f := strings.Fields(lines[2]); len(f) != 3 || f[0] != "ta_leader_positions" || f[1] != "15" || f[2] != "fixture" {
		t.Errorf("fixture line = %q", lines[2])
	}
	if f := strings.Fields(lines[3]); f[0] != "total" || f[1] != "18" {
		t.Errorf("total line = %q", lines[3])
	}
}

func TestReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	result := core.ImportResult{RunID: "run-1", Workbook: "wfm.xlsx"}
	if err := report(&buf, result, true); err != nil {
		t.Fatalf("report() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"runId": "run-1"`) {
		t.Errorf("JSON output = %s", buf.String())
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	env := "LOG_LEVEL=debug\nDATABASE_URL=from-dotenv.db\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DATABASE_URL", "from-env.db")
	t.Setenv("DB_DRIVER", "")

	cfg, err := loadConfig("", "")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want .env value debug", cfg.Logging.Level)
	}
	if cfg.Database.URL != "from-dotenv.db" {
		t.Errorf("Database.URL = %q, want from-dotenv.db", cfg.Database.URL)
	}

	cfg, err = loadConfig("from-flag.db", "")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Database.URL != "from-flag.db" {
		t.Errorf("Database.URL = %q, want flag value", cfg.Database.URL)
	}
}
