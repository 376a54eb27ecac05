package core

import (
	"errors"
	"fmt"
	"strings"
)

// ExtractResult holds the records of one positional block.
type ExtractResult struct {
	Table   string
	Records []Record
	// Scanned is the number of rows inside the range that were read.
	Scanned int
	// Skipped counts rows that failed the key rule.
	Skipped int
}

// Extract reads one table group's block from the workbook.
//
// Rows are visited in ascending order. A row whose key cells fail the key rule
// is skipped without error. Every other row is coerced column by column into a
// Record whose values align with def.Columns. Source order is preserved.
func Extract(wb Workbook, def TableDefinition) (ExtractResult, error) {
	result := ExtractResult{Table: def.Info.Key}

	sheet, err := wb.Sheet(def.Source.Sheet)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			return result, &SheetError{
				Sheet:     def.Source.Sheet,
				Table:     def.Info.Key,
				Available: wb.SheetNames(),
				Err:       ErrSheetNotFound,
			}
		}
		return result, err
	}

	last := def.Source.LastRow
	if last == 0 {
		if last, err = sheet.MaxRow(); err != nil {
			return result, err
		}
	}

	keys := keyColumns(def)
	filled := filledColumns(def)

	for row := def.Source.FirstRow; row <= last; row++ {
		result.Scanned++

		raw := make([]any, len(def.Columns))
		for i, col := range def.Columns {
			v, err := sheet.Cell(col.Cell, row)
			if err != nil {
				return result, fmt.Errorf("table %s row %d: %w", def.Info.Key, row, err)
			}
			raw[i] = v
		}

		if !keep(def.Key.Match, keys, filled, raw) {
			result.Skipped++
			continue
		}

		rec := make(Record, len(def.Columns))
		for i, col := range def.Columns {
			rec[i] = Coerce(col.Type, raw[i])
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// keyColumns returns the positions of the key columns inside def.Columns.
func keyColumns(def TableDefinition) []int {
	if len(def.Key.Columns) == 0 {
		return []int{0}
	}
	return columnPositions(def, def.Key.Columns)
}

// filledColumns marks the positions named by def.Key.Filled.
func filledColumns(def TableDefinition) map[int]bool {
	if len(def.Key.Filled) == 0 {
		return nil
	}
	out := make(map[int]bool, len(def.Key.Filled))
	for _, i := range columnPositions(def, def.Key.Filled) {
		out[i] = true
	}
	return out
}

func columnPositions(def TableDefinition, names []string) []int {
	idx := make([]int, 0, len(names))
	for _, name := range names {
		for i, c := range def.Columns {
			if c.Name == name {
				idx = append(idx, i)
				break
			}
		}
	}
	return idx
}

// hasKey reports whether the key cell at position k holds a value.
func hasKey(raw []any, k int, filled map[int]bool) bool {
	if raw[k] == nil {
		return false
	}
	if filled[k] {
		return strings.TrimSpace(stringify(raw[k])) != ""
	}
	return true
}

func keep(match KeyMatch, keys []int, filled map[int]bool, raw []any) bool {
	// Filled columns gate the row under every match mode.
	for k := range filled {
		if !hasKey(raw, k, filled) {
			return false
		}
	}

	switch match {
	case KeyAny:
		for _, k := range keys {
			if hasKey(raw, k, filled) {
				return true
			}
		}
		return false
	case KeyNumeric:
		for _, k := range keys {
			if !IsNumeric(raw[k]) {
				return false
			}
		}
		return true
	default:
		for _, k := range keys {
			if !hasKey(raw, k, filled) {
				return false
			}
		}
		return true
	}
}
