package tables

import "github.com/JonMunkholm/wfm/internal/core"

const (
	SheetDevOpsShared = "DevOps – Shared Services" // en dash
	SheetITHelpDesk   = "IT HelpDesk"
)

func registerDevOpsShared() {
	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "devops_uptime", Group: "DevOps Shared Services", Label: "Uptime"},
		Source: core.SheetRange{Sheet: SheetDevOpsShared, FirstRow: 6, LastRow: 13},
		Columns: []core.ColumnSpec{
			{Name: "system_product", Cell: "A", Type: core.FieldText},
			{Name: "availability_level", Cell: "B", Type: core.FieldNumber},
			{Name: "total_downtime", Cell: "C", Type: core.FieldNumber},
			{Name: "downtime_per_year_hrs", Cell: "D", Type: core.FieldNumber},
			{Name: "downtime_per_quarter_hrs", Cell: "E", Type: core.FieldNumber},
			{Name: "downtime_per_month_hrs", Cell: "F", Type: core.FieldNumber},
		},
	})

	// Rows without a product name still count when they carry a ticket estimate.
	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "devops_tickets", Group: "DevOps Shared Services", Label: "Tickets"},
		Source: core.SheetRange{Sheet: SheetDevOpsShared, FirstRow: 38, LastRow: 47},
		Columns: []core.ColumnSpec{
			{Name: "system_product", Cell: "A", Type: core.FieldText},
			{Name: "availability_level", Cell: "B", Type: core.FieldNumber},
			{Name: "total_downtime", Cell: "C", Type: core.FieldNumber},
			{Name: "downtime_per_year_hrs", Cell: "D", Type: core.FieldNumber},
			{Name: "est_tickets_per_year", Cell: "E", Type: core.FieldNumber},
			{Name: "est_tickets_per_quarter", Cell: "F", Type: core.FieldNumber},
			{Name: "est_tickets_per_month", Cell: "G", Type: core.FieldNumber},
			{Name: "est_tickets_per_week", Cell: "H", Type: core.FieldNumber},
		},
		Key: core.KeyRule{Columns: []string{"system_product", "est_tickets_per_year"}, Match: core.KeyAny},
	})
}

func registerITHelpDesk() {
	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "it_helpdesk", Group: "IT HelpDesk", Label: "Tickets"},
		Source: core.SheetRange{Sheet: SheetITHelpDesk, FirstRow: 2, LastRow: 19},
		Columns: []core.ColumnSpec{
			{Name: "month", Cell: "A", Type: core.FieldText},
			{Name: "num_tickets", Cell: "B", Type: core.FieldInteger},
			{Name: "tickets_per_engineer", Cell: "C", Type: core.FieldNumber},
			{Name: "num_emp", Cell: "D", Type: core.FieldNumber},
		},
	})

	core.Register(core.TableDefinition{
		Info:    core.TableInfo{Key: "it_helpdesk_notes", Group: "IT HelpDesk", Label: "Notes"},
		Source:  core.SheetRange{Sheet: SheetITHelpDesk, FirstRow: 37, LastRow: 39},
		Columns: []core.ColumnSpec{{Name: "note", Cell: "B", Type: core.FieldText}},
		Key:     core.KeyRule{Filled: []string{"note"}},
	})
}
