package tables

import "github.com/JonMunkholm/wfm/internal/core"

const (
	SheetProductivity = "Productivity_Emp"
	SheetAdaraDevOps  = "Adara-Devops"
)

func registerProductivity() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   core.EmployeesTable,
			Group: "Productivity",
			Label: "Employees",
		},
		// Runs to the last populated row; column J is not carried.
		Source: core.SheetRange{Sheet: SheetProductivity, FirstRow: 2},
		Columns: []core.ColumnSpec{
			{Name: "emp_id", Cell: "A", Type: core.FieldText},
			{Name: "employee_name", Cell: "B", Type: core.FieldText},
			{Name: "joining_date", Cell: "C", Type: core.FieldDate},
			{Name: "designation", Cell: "D", Type: core.FieldText},
			{Name: "tenure", Cell: "E", Type: core.FieldText},
			{Name: "shift_role", Cell: "F", Type: core.FieldText},
			{Name: "team_name", Cell: "G", Type: core.FieldText},
			{Name: "manager_name", Cell: "H", Type: core.FieldText},
			{Name: "team_lead_by", Cell: "I", Type: core.FieldText},
			{Name: "q1_performance", Cell: "K", Type: core.FieldNumber},
			{Name: "q2_performance", Cell: "L", Type: core.FieldNumber},
			{Name: "q3_performance", Cell: "M", Type: core.FieldNumber},
			{Name: "exit_type", Cell: "N", Type: core.FieldText},
			{Name: "last_working_day", Cell: "O", Type: core.FieldDate},
			{Name: "comment", Cell: "P", Type: core.FieldText},
			{Name: "q3_ctc", Cell: "Q", Type: core.FieldNumber},
			{Name: "status", Cell: "R", Type: core.FieldText},
			{Name: "date_of_exit", Cell: "S", Type: core.FieldDate},
			{Name: "status_q_wise", Cell: "T", Type: core.FieldText},
			{Name: "take", Cell: "U", Type: core.FieldText},
		},
		OrderBy: []string{"team_name", "employee_name"},
		Filters: []core.FilterSpec{
			{Param: "team", Column: "team_name"},
			{Param: "status", Column: "status"},
			{Param: "manager", Column: "team_lead_by"},
		},
	})
}

func registerAdaraDevOps() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "adara_devops",
			Group: "Adara DevOps",
			Label: "Team",
		},
		Source: core.SheetRange{Sheet: SheetAdaraDevOps, FirstRow: 3},
		Columns: []core.ColumnSpec{
			{Name: "emp_id", Cell: "A", Type: core.FieldText},
			{Name: "employee_name", Cell: "B", Type: core.FieldText},
			{Name: "joining_date", Cell: "C", Type: core.FieldDate},
			{Name: "tenure", Cell: "D", Type: core.FieldText},
			{Name: "designation", Cell: "E", Type: core.FieldText},
			{Name: "location", Cell: "F", Type: core.FieldText},
			{Name: "utilisation", Cell: "G", Type: core.FieldNumber},
			{Name: "comments", Cell: "H", Type: core.FieldText},
		},
		OrderBy: []string{"employee_name"},
		Filters: []core.FilterSpec{
			{Param: "location", Column: "location"},
		},
	})
}
