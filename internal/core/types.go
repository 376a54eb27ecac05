package core

import (
	"github.com/jmoiron/sqlx"
)

// DBTX is the interface for database operations.
// Satisfied by *sqlx.DB, *sqlx.Conn and *sqlx.Tx.
type DBTX interface {
	sqlx.ExecerContext
	sqlx.QueryerContext
	Rebind(string) string
}

var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Conn)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

// FieldType represents the coercion applied to a column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumber
	FieldInteger
	FieldDate
)

// String returns the field type name used in table listings.
func (t FieldType) String() string {
	switch t {
	case FieldNumber:
		return "number"
	case FieldInteger:
		return "integer"
	case FieldDate:
		return "date"
	default:
		return "text"
	}
}

// ColumnSpec maps one worksheet column to one table column.
type ColumnSpec struct {
	Name string    // Table column name, e.g. "employee_name"
	Cell string    // Worksheet column letter, e.g. "B"; empty for fixture-only columns
	Type FieldType // Coercion applied to the raw cell value
}

// SheetRange locates a positional block inside a workbook.
type SheetRange struct {
	Sheet    string // Worksheet name, matched exactly
	FirstRow int    // 1-based, inclusive
	LastRow  int    // 1-based, inclusive; 0 means the last populated row
}

// KeyMatch selects how the key columns decide whether a row is kept.
type KeyMatch int

const (
	// KeyAll keeps a row when every key column holds a value.
	KeyAll KeyMatch = iota
	// KeyAny keeps a row when at least one key column holds a value.
	KeyAny
	// KeyNumeric keeps a row when the (single) key column holds a number.
	KeyNumeric
)

// KeyRule names the key columns (by table column name) and how they match.
// A zero-value Columns defaults to the first ColumnSpec.
//
// A key cell holds a value unless it is empty; "-" and whitespace count.
// Columns listed in Filled must also be non-empty once trimmed.
type KeyRule struct {
	Columns []string
	Match   KeyMatch
	Filled  []string
}

// FilterSpec declares an equality filter a caller may apply to a table.
type FilterSpec struct {
	Param  string // Query parameter name, e.g. "manager"
	Column string // Table column compared with =
}

// Record is one extracted row; values align with TableDefinition.Columns.
type Record []any

// FixtureFunc produces the rows of a table group that is not read from the workbook.
type FixtureFunc func() ([]Record, error)

// TableInfo contains display information about a table.
type TableInfo struct {
	Key     string   // Table name: "productivity_emp"
	Group   string   // Workbook section: "Productivity", "SoHo Team"
	Label   string   // Display name: "Employees"
	Columns []string // Column names in insertion order
}

// TableDefinition contains everything needed to load and serve a table group.
type TableDefinition struct {
	Info    TableInfo
	Source  SheetRange
	Columns []ColumnSpec
	Key     KeyRule

	// OrderBy is the fixed display order; id is always appended as a tiebreaker.
	OrderBy []string

	// Filters lists the equality filters accepted by Query.
	Filters []FilterSpec

	// Fixture, when set, replaces workbook extraction with static rows.
	Fixture FixtureFunc
}

// IsFixture reports whether the table group is loaded from static data.
func (t TableDefinition) IsFixture() bool {
	return t.Fixture != nil
}

// column returns the ColumnSpec named name.
func (t TableDefinition) column(name string) (ColumnSpec, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// filterColumn resolves a filter parameter to its column.
func (t TableDefinition) filterColumn(param string) (string, bool) {
	for _, f := range t.Filters {
		if f.Param == param {
			return f.Column, true
		}
	}
	return "", false
}

// Filters holds caller-supplied equality filters keyed by parameter name.
// Empty values mean "no constraint".
type Filters map[string]string

// TableRow represents a single row of data as key-value pairs.
type TableRow map[string]any

// TableResult reports what one table group received during an import pass.
type TableResult struct {
	Table    string `json:"table"`
	Inserted int    `json:"inserted"`
	Fixture  bool   `json:"fixture"`
}

// ImportResult is the outcome of a full import pass.
type ImportResult struct {
	RunID    string        `json:"runId"`
	Workbook string        `json:"workbook"`
	Tables   []TableResult `json:"tables"`
}

// TotalRows sums inserted rows across table groups.
func (r ImportResult) TotalRows() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Inserted
	}
	return n
}
