// Package core provides the workbook normalization and reporting logic.
//
// This package holds all domain logic independent of any transport layer.
// It is used by the HTTP server, the importer CLI, and tests without
// modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Table Definitions: Registered via the registry, each table group is
//     plain layout data (sheet, row range, column map, key rule, filters).
//   - Coercion: Pure functions turning raw cell values into nullable pgtype values.
//   - Extraction: [Extract] walks one positional block of a [Workbook].
//   - Service: The entry point for imports, filtered queries, and the
//     manager-grouped productivity view.
//
// # Table Registry
//
// Tables are registered at init time using [Register]. Registration order is
// the import order:
//
//	core.Register(TableDefinition{
//	    Info:   TableInfo{Key: "cost_summary", Group: "Cost Summary", Label: "Cost Summary"},
//	    Source: SheetRange{Sheet: "Cost Summary", FirstRow: 3, LastRow: 22},
//	    Columns: []ColumnSpec{
//	        {Name: "serial_no", Cell: "A", Type: FieldInteger},
//	        {Name: "team_manager", Cell: "B", Type: FieldText},
//	    },
//	    OrderBy: []string{"serial_no"},
//	})
//
// # Import
//
// [Service.Import] acquires one connection for the whole pass. Each table group
// is wiped and reloaded inside its own transaction; a failure stops the pass and
// leaves earlier groups committed. A missing worksheet is always fatal.
//
// # Error Handling
//
// Lookups fail with the sentinel errors [ErrUnknownTable] and
// [ErrUnknownColumn]; filter parameters a table does not declare are ignored. Import failures on a missing worksheet are reported
// as a [*SheetError] wrapping [ErrSheetNotFound]. Bad cell content is never an
// error: it becomes a null field or a skipped row.
package core
