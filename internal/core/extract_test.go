package core

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes cells (sheet -> cell -> value) to a temp .xlsx and opens it.
func saveWorkbook(t *testing.T, sheets map[string]map[string]any) Workbook {
	t.Helper()

	wb, err := OpenWorkbook(writeWorkbookFile(t, sheets))
	if err != nil {
		t.Fatalf("OpenWorkbook() error = %v", err)
	}
	t.Cleanup(func() { wb.Close() })
	return wb
}

// writeWorkbookFile saves sheets as an .xlsx file and returns its path.
func writeWorkbookFile(t *testing.T, sheets map[string]map[string]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, cells := range sheets {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
			first = false
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet %q: %v", name, err)
		}
		for cell, v := range cells {
			if err := f.SetCellValue(name, cell, v); err != nil {
				t.Fatalf("set %s!%s: %v", name, cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func employeesDef() TableDefinition {
	return TableDefinition{
		Info:   TableInfo{Key: "employees", Group: "Test"},
		Source: SheetRange{Sheet: "People", FirstRow: 2},
		Columns: []ColumnSpec{
			{Name: "emp_id", Cell: "A", Type: FieldText},
			{Name: "name", Cell: "B", Type: FieldText},
			{Name: "joined", Cell: "C", Type: FieldDate},
			{Name: "score", Cell: "D", Type: FieldNumber},
		},
	}
}

func TestExtract_SkipsRowsWithoutKey(t *testing.T) {
	wb := saveWorkbook(t, map[string]map[string]any{
		"People": {
			"A1": "Emp ID", "B1": "Name", "C1": "Joined", "D1": "Score",
			"A2": "E1", "B2": "Asha", "C2": time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC), "D2": 81.5,
			// row 3: no key
			"B3": "Ghost", "D3": 99,
			"A4": "E2", "B4": "Ravi", "C4": "-", "D4": "-",
			// whitespace and dash keys are values, not gaps
			"A5": " ", "B5": "Space key",
			"A6": "E3", "B6": "Meera", "D6": "n/a",
			"A7": "-", "B7": "Dash key",
		},
	})

	got, err := Extract(wb, employeesDef())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(got.Records) != 5 {
		t.Fatalf("len(Records) = %d, want 5", len(got.Records))
	}
	if got.Scanned != 6 || got.Skipped != 1 {
		t.Errorf("Scanned/Skipped = %d/%d, want 6/1", got.Scanned, got.Skipped)
	}

	ids := []string{"E1", "E2", "", "E3", "-"}
	for i, rec := range got.Records {
		if id := rec[0].(pgtype.Text); !id.Valid || id.String != ids[i] {
			t.Errorf("record %d emp_id = %+v, want %q", i, id, ids[i])
		}
	}

	first := got.Records[0]
	if d := first[2].(pgtype.Text); !d.Valid || d.String != "2023-07-03" {
		t.Errorf("joined = %+v, want 2023-07-03", d)
	}
	if s := first[3].(pgtype.Float8); !s.Valid || s.Float64 != 81.5 {
		t.Errorf("score = %+v, want 81.5", s)
	}

	second := got.Records[1]
	if d := second[2].(pgtype.Text); d.Valid {
		t.Errorf("dash date should be null, got %+v", d)
	}
	if s := second[3].(pgtype.Float8); s.Valid {
		t.Errorf("dash score should be null, got %+v", s)
	}

	if s := got.Records[3][3].(pgtype.Float8); s.Valid {
		t.Errorf("unparseable score should be null, got %+v", s)
	}
}

func TestExtract_FixedRangeIgnoresOutsideRows(t *testing.T) {
	wb := saveWorkbook(t, map[string]map[string]any{
		"Pivot": {
			"A4": "header", "B4": "Apr",
			"A5": "CTC", "B5": 10,
			"A6": "Bonus", "B6": 2,
			"A7": "Total", "B7": 12,
			"A8": "not part of the block", "B8": 999,
		},
	})

	def := TableDefinition{
		Info:   TableInfo{Key: "pivot"},
		Source: SheetRange{Sheet: "Pivot", FirstRow: 5, LastRow: 7},
		Columns: []ColumnSpec{
			{Name: "row_label", Cell: "A", Type: FieldText},
			{Name: "apr", Cell: "B", Type: FieldNumber},
		},
	}

	got, err := Extract(wb, def)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(got.Records))
	}
	if last := got.Records[2][0].(pgtype.Text).String; last != "Total" {
		t.Errorf("last label = %q, want Total", last)
	}
}

func TestExtract_KeyRules(t *testing.T) {
	wb := saveWorkbook(t, map[string]map[string]any{
		"Blocks": {
			// rows 1-4: A or E
			"A1": "CRM", "E1": 12,
			"E2": 7,
			"A3": "Billing",
			"B4": "only middle",
			// rows 6-8: C and D
			"C6": "Analyst", "D6": 3,
			"C7": "Lead",
			"D8": 2,
			// rows 10-12: numeric A
			"A10": 1, "B10": "first",
			"A11": "Total", "B11": "summary",
			"A12": 2, "B12": "second",
			// rows 14-17: filled note
			"B14": "Escalate printer tickets",
			"B15": "   ",
			"B16": "-",
			// rows 19-21: filled designation, present headcount
			"C19": "Analyst", "D19": "-",
			"C20": " ", "D20": 4,
			"C21": "Lead", "D21": " ",
		},
	})

	tests := []struct {
		name string
		def  TableDefinition
		want int
	}{
		{
			name: "any",
			def: TableDefinition{
				Info:   TableInfo{Key: "any"},
				Source: SheetRange{Sheet: "Blocks", FirstRow: 1, LastRow: 4},
				Columns: []ColumnSpec{
					{Name: "system", Cell: "A", Type: FieldText},
					{Name: "per_month", Cell: "E", Type: FieldNumber},
				},
				Key: KeyRule{Columns: []string{"system", "per_month"}, Match: KeyAny},
			},
			want: 3,
		},
		{
			name: "all",
			def: TableDefinition{
				Info:   TableInfo{Key: "all"},
				Source: SheetRange{Sheet: "Blocks", FirstRow: 6, LastRow: 8},
				Columns: []ColumnSpec{
					{Name: "designation", Cell: "C", Type: FieldText},
					{Name: "headcount", Cell: "D", Type: FieldInteger},
				},
				Key: KeyRule{Columns: []string{"designation", "headcount"}, Match: KeyAll},
			},
			want: 1,
		},
		{
			name: "numeric",
			def: TableDefinition{
				Info:   TableInfo{Key: "numeric"},
				Source: SheetRange{Sheet: "Blocks", FirstRow: 10, LastRow: 12},
				Columns: []ColumnSpec{
					{Name: "serial_no", Cell: "A", Type: FieldInteger},
					{Name: "label", Cell: "B", Type: FieldText},
				},
				Key: KeyRule{Match: KeyNumeric},
			},
			want: 2,
		},
		{
			name: "filled note",
			def: TableDefinition{
				Info:    TableInfo{Key: "notes"},
				Source:  SheetRange{Sheet: "Blocks", FirstRow: 14, LastRow: 17},
				Columns: []ColumnSpec{{Name: "note", Cell: "B", Type: FieldText}},
				Key:     KeyRule{Filled: []string{"note"}},
			},
			want: 2,
		},
		{
			name: "filled designation",
			def: TableDefinition{
				Info:   TableInfo{Key: "joiners"},
				Source: SheetRange{Sheet: "Blocks", FirstRow: 19, LastRow: 21},
				Columns: []ColumnSpec{
					{Name: "designation", Cell: "C", Type: FieldText},
					{Name: "headcount", Cell: "D", Type: FieldInteger},
				},
				Key: KeyRule{
					Columns: []string{"designation", "headcount"},
					Match:   KeyAll,
					Filled:  []string{"designation"},
				},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(wb, tt.def)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if len(got.Records) != tt.want {
				t.Errorf("len(Records) = %d, want %d", len(got.Records), tt.want)
			}
		})
	}
}

func TestExtract_MissingSheet(t *testing.T) {
	wb := saveWorkbook(t, map[string]map[string]any{"Other": {"A1": "x"}})

	_, err := Extract(wb, employeesDef())
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("Extract() error = %v, want ErrSheetNotFound", err)
	}
	var sheetErr *SheetError
	if !errors.As(err, &sheetErr) {
		t.Fatalf("Extract() error type = %T, want *SheetError", err)
	}
	if sheetErr.Sheet != "People" || sheetErr.Table != "employees" {
		t.Errorf("SheetError = %+v", sheetErr)
	}
	if len(sheetErr.Available) != 1 || sheetErr.Available[0] != "Other" {
		t.Errorf("Available = %v, want [Other]", sheetErr.Available)
	}
}

func TestExtract_EmptySheetToLastRow(t *testing.T) {
	wb := saveWorkbook(t, map[string]map[string]any{"People": {}})

	got, err := Extract(wb, employeesDef())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got.Records) != 0 {
		t.Errorf("len(Records) = %d, want 0", len(got.Records))
	}
}
