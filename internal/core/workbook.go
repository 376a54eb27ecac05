package core

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only view over a spreadsheet file.
type Workbook interface {
	// Name is the file name the workbook was opened from.
	Name() string
	// Sheet returns the named worksheet or an error wrapping ErrSheetNotFound.
	Sheet(name string) (Sheet, error)
	// SheetNames lists the worksheets in workbook order.
	SheetNames() []string
	Close() error
}

// Sheet reads raw cell values from one worksheet.
//
// Cell returns nil, string, float64, bool or time.Time.
type Sheet interface {
	Name() string
	Cell(col string, row int) (any, error)
	// MaxRow is the last populated row, 0 for an empty sheet.
	MaxRow() (int, error)
}

// xlsxWorkbook adapts an excelize file.
type xlsxWorkbook struct {
	f        *excelize.File
	name     string
	date1904 bool
}

// OpenWorkbook opens an .xlsx workbook from disk.
func OpenWorkbook(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filepath.Base(path), err)
	}
	return newXLSXWorkbook(f, filepath.Base(path))
}

// NewWorkbook wraps an already opened excelize file. Close closes the file.
func NewWorkbook(f *excelize.File, name string) (Workbook, error) {
	return newXLSXWorkbook(f, name)
}

func newXLSXWorkbook(f *excelize.File, name string) (*xlsxWorkbook, error) {
	wb := &xlsxWorkbook{f: f, name: name}
	props, err := f.GetWorkbookProps()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read workbook properties: %w", err)
	}
	if props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

func (w *xlsxWorkbook) Name() string { return w.name }

func (w *xlsxWorkbook) Sheet(name string) (Sheet, error) {
	idx, err := w.f.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("look up sheet %q: %w", name, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrSheetNotFound)
	}
	return &xlsxSheet{wb: w, name: name, styles: make(map[int]bool)}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

type xlsxSheet struct {
	wb   *xlsxWorkbook
	name string

	// styles caches whether a style index carries a date number format.
	styles map[int]bool
}

func (s *xlsxSheet) Name() string { return s.name }

func (s *xlsxSheet) MaxRow() (int, error) {
	rows, err := s.wb.f.GetRows(s.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, fmt.Errorf("read rows of %q: %w", s.name, err)
	}
	// GetRows keeps styled but empty rows; walk back to the last one with content.
	for i := len(rows) - 1; i >= 0; i-- {
		for _, v := range rows[i] {
			if v != "" {
				return i + 1, nil
			}
		}
	}
	return 0, nil
}

func (s *xlsxSheet) Cell(col string, row int) (any, error) {
	cell := col + strconv.Itoa(row)
	f := s.wb.f

	raw, err := f.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read %s!%s: %w", s.name, cell, err)
	}
	if raw == "" {
		return nil, nil
	}

	typ, err := f.GetCellType(s.name, cell)
	if err != nil {
		return nil, fmt.Errorf("cell type %s!%s: %w", s.name, cell, err)
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return raw, nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw, nil
		}
		isDate, err := s.isDateCell(cell)
		if err != nil {
			return nil, err
		}
		if isDate {
			t, err := excelize.ExcelDateToTime(n, s.wb.date1904)
			if err == nil {
				return t, nil
			}
		}
		return n, nil
	default:
		// Shared and inline strings, formula text results and error values.
		return raw, nil
	}
}

func (s *xlsxSheet) isDateCell(cell string) (bool, error) {
	idx, err := s.wb.f.GetCellStyle(s.name, cell)
	if err != nil {
		return false, fmt.Errorf("cell style %s!%s: %w", s.name, cell, err)
	}
	if isDate, ok := s.styles[idx]; ok {
		return isDate, nil
	}

	style, err := s.wb.f.GetStyle(idx)
	if err != nil {
		return false, fmt.Errorf("style %d: %w", idx, err)
	}
	isDate := isDateNumFmt(style.NumFmt)
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	s.styles[idx] = isDate
	return isDate, nil
}

// isDateNumFmt reports whether a built-in number format id renders a date.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains day or year tokens.
// Quoted literals, escaped characters and bracketed sections are ignored.
func isDateFormatCode(code string) bool {
	inQuote := false
	inBracket := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\':
			i++
		case c == 'y' || c == 'Y' || c == 'd' || c == 'D':
			return true
		}
	}
	return false
}

// columnIndex converts a column letter to its 1-based index.
func columnIndex(col string) (int, error) {
	if col == "" {
		return 0, fmt.Errorf("empty column letter")
	}
	return excelize.ColumnNameToNumber(col)
}
