package core

import (
	"context"
	"fmt"
	"strings"
)

// importRunsTable records every import pass.
const importRunsTable = "import_runs"

// EnsureSchema creates every registered table and the import history table.
// Existing tables are left untouched.
func (s *Service) EnsureSchema(ctx context.Context) error {
	for _, def := range All() {
		if _, err := s.db.ExecContext(ctx, s.createTableSQL(def)); err != nil {
			return fmt.Errorf("create table %s: %w", def.Info.Key, err)
		}
	}
	if _, err := s.db.ExecContext(ctx, s.createImportRunsSQL()); err != nil {
		return fmt.Errorf("create table %s: %w", importRunsTable, err)
	}
	return nil
}

func (s *Service) createTableSQL(def TableDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quoteIdentifier(def.Info.Key))
	fmt.Fprintf(&b, "    id %s", s.dialect.identity)
	for _, col := range def.Columns {
		fmt.Fprintf(&b, ",\n    %s %s", quoteIdentifier(col.Name), s.dialect.columnType(col.Type))
	}
	b.WriteString("\n)")
	return b.String()
}

func (s *Service) createImportRunsSQL() string {
	d := s.dialect
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id %s PRIMARY KEY,
    file_name %s NOT NULL,
    started_at %s NOT NULL,
    finished_at %s,
    status %s NOT NULL,
    tables_loaded %s NOT NULL DEFAULT 0,
    rows_inserted %s NOT NULL DEFAULT 0,
    error %s
)`, importRunsTable, d.text, d.text, d.timestamp, d.timestamp, d.text, d.integer, d.integer, d.text)
}
