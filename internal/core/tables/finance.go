package tables

import (
	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/wfm/internal/core"
)

// Sheet names as they appear in the workbook.
const (
	SheetCostSummary = "Cost Summary"
	SheetDADKPivot   = "DA&DK_Pivot"
)

// fiscalMonths are the month columns of the DA&DK pivot, April to March.
var fiscalMonths = []string{
	"apr_25", "may_25", "jun_25", "jul_25", "aug_25", "sep_25",
	"oct_25", "nov_25", "dec_25", "jan_26", "feb_26", "mar_26",
}

func registerCostSummary() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "cost_summary",
			Group: "Cost Summary",
			Label: "Cost Summary",
		},
		Source: core.SheetRange{Sheet: SheetCostSummary, FirstRow: 3, LastRow: 22},
		Columns: []core.ColumnSpec{
			{Name: "serial_no", Cell: "A", Type: core.FieldInteger},
			{Name: "team_manager", Cell: "B", Type: core.FieldText},
			{Name: "product_team", Cell: "C", Type: core.FieldText},
			{Name: "leader", Cell: "D", Type: core.FieldText},
			{Name: "num_employees_q2", Cell: "E", Type: core.FieldInteger},
			{Name: "num_employees_q3", Cell: "F", Type: core.FieldInteger},
			{Name: "cumulative_cost_q3", Cell: "G", Type: core.FieldNumber},
			{Name: "cumulative_cost_h1", Cell: "H", Type: core.FieldNumber},
			{Name: "cumulative_cost_q2", Cell: "I", Type: core.FieldNumber},
			{Name: "cumulative_cost_q1", Cell: "J", Type: core.FieldNumber},
			{Name: "cost_per_emp_q3", Cell: "K", Type: core.FieldNumber},
			{Name: "cost_per_emp_q2", Cell: "L", Type: core.FieldNumber},
			{Name: "remarks", Cell: "M", Type: core.FieldText},
		},
		OrderBy: []string{"serial_no"},
	})
}

func registerDADKPivot() {
	ctc := append([]core.ColumnSpec{{Name: "row_label", Cell: "A", Type: core.FieldText}},
		consecutive("B", fiscalMonths, core.FieldNumber)...)
	ctc = append(ctc, core.ColumnSpec{Name: "variance", Cell: "N", Type: core.FieldNumber})

	core.Register(core.TableDefinition{
		Info:    core.TableInfo{Key: "dadk_ctc", Group: "DA&DK", Label: "CTC"},
		Source:  core.SheetRange{Sheet: SheetDADKPivot, FirstRow: 5, LastRow: 7},
		Columns: ctc,
	})

	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "dadk_headcount", Group: "DA&DK", Label: "Head Count"},
		Source: core.SheetRange{Sheet: SheetDADKPivot, FirstRow: 11, LastRow: 13},
		Columns: append([]core.ColumnSpec{{Name: "row_label", Cell: "A", Type: core.FieldText}},
			consecutive("B", fiscalMonths, core.FieldInteger)...),
	})

	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "dadk_new_joiners", Group: "DA&DK", Label: "New Joiners"},
		Source: core.SheetRange{Sheet: SheetDADKPivot, FirstRow: 19, LastRow: 30},
		Columns: []core.ColumnSpec{
			{Name: "designation", Cell: "C", Type: core.FieldText},
			{Name: "headcount", Cell: "D", Type: core.FieldInteger},
		},
		Key: core.KeyRule{
			Columns: []string{"designation", "headcount"},
			Match:   core.KeyAll,
			Filled:  []string{"designation"},
		},
	})
}

// consecutive maps names onto adjacent worksheet columns starting at first.
func consecutive(first string, names []string, typ core.FieldType) []core.ColumnSpec {
	start, err := excelize.ColumnNameToNumber(first)
	if err != nil {
		panic(err)
	}
	specs := make([]core.ColumnSpec, len(names))
	for i, name := range names {
		cell, err := excelize.ColumnNumberToName(start + i)
		if err != nil {
			panic(err)
		}
		specs[i] = core.ColumnSpec{Name: name, Cell: cell, Type: typ}
	}
	return specs
}
