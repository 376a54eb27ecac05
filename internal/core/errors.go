package core

import (
	"errors"
	"fmt"
)

var (
	// ErrSheetNotFound is returned when a table group's worksheet is absent.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrUnknownTable is returned for a table name that is not registered.
	ErrUnknownTable = errors.New("unknown table")

	// ErrUnknownColumn is returned for a column the table does not have.
	ErrUnknownColumn = errors.New("unknown column")
)

// SheetError reports which table group could not find its worksheet.
type SheetError struct {
	Sheet string
	Table string
	// Available lists the worksheets the workbook does have.
	Available []string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("table %s: sheet %q: %v", e.Table, e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// ImportError wraps a failure during one table group of an import pass.
// Completed lists the groups that were committed before the failure.
type ImportError struct {
	Table     string
	Completed []TableResult
	Err       error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s: %v", e.Table, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
