package core

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/JonMunkholm/wfm/internal/config"
)

// Service provides imports, filtered queries and the grouped productivity view.
//
// The service holds the store handle; it never caches query results.
// Each query borrows one connection from the pool and returns it before
// the call completes.
type Service struct {
	db      *sqlx.DB
	dialect dialect
	imports *ImportLimiter
}

// NewService creates a new Service over an open store handle.
func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:      db,
		dialect: dialectFor(db.DriverName()),
		imports: NewImportLimiter(DefaultImportWait),
	}
}

// ImportRunning reports whether an import pass is in progress in this process.
func (s *Service) ImportRunning() bool {
	return s.imports.Running()
}

// Ping verifies the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListTables returns information about all registered tables.
func (s *Service) ListTables() []TableInfo {
	defs := All()
	infos := make([]TableInfo, len(defs))
	for i, def := range defs {
		infos[i] = def.Info
	}
	return infos
}

// ListTablesByGroup returns tables organized by group.
func (s *Service) ListTablesByGroup() map[string][]TableInfo {
	result := make(map[string][]TableInfo)
	for _, group := range Groups() {
		for _, def := range ByGroup(group) {
			result[group] = append(result[group], def.Info)
		}
	}
	return result
}

// dialect holds the DDL fragments that differ between SQLite and PostgreSQL.
type dialect struct {
	identity  string
	real      string
	integer   string
	text      string
	timestamp string

	// restartIdentity clears tables with TRUNCATE ... RESTART IDENTITY
	// instead of DELETE plus a sqlite_sequence reset.
	restartIdentity bool
}

func dialectFor(driver string) dialect {
	if driver == config.DriverPgx {
		return dialect{
			identity:  "BIGSERIAL PRIMARY KEY",
			real:      "DOUBLE PRECISION",
			integer:   "BIGINT",
			text:      "TEXT",
			timestamp: "TIMESTAMPTZ",

			restartIdentity: true,
		}
	}
	return dialect{
		identity:  "INTEGER PRIMARY KEY AUTOINCREMENT",
		real:      "REAL",
		integer:   "INTEGER",
		text:      "TEXT",
		timestamp: "TIMESTAMP",
	}
}

func (d dialect) columnType(t FieldType) string {
	switch t {
	case FieldNumber:
		return d.real
	case FieldInteger:
		return d.integer
	default:
		return d.text
	}
}

// quoteIdentifier safely quotes a SQL identifier to prevent injection.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteColumns quotes every name and joins them with commas.
func quoteColumns(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdentifier(n)
	}
	return strings.Join(quoted, ", ")
}
