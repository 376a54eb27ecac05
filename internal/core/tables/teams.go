package tables

import "github.com/JonMunkholm/wfm/internal/core"

const (
	SheetSoHo               = "SoHo Team"
	SheetCustomerExperience = "Customer Experience - Tushar"
)

// registerSoHo covers three independent blocks of the SoHo sheet:
// the monitoring series in A-E and two scorecards side by side in G onwards.
func registerSoHo() {
	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "soho_monitoring", Group: "SoHo Team", Label: "Monitoring"},
		Source: core.SheetRange{Sheet: SheetSoHo, FirstRow: 3, LastRow: 26},
		Columns: []core.ColumnSpec{
			{Name: "monitor", Cell: "A", Type: core.FieldText},
			{Name: "yearmonth", Cell: "B", Type: core.FieldText},
			{Name: "index_score", Cell: "C", Type: core.FieldNumber},
			{Name: "handling_time_score", Cell: "D", Type: core.FieldNumber},
			{Name: "response_rate_score", Cell: "E", Type: core.FieldNumber},
		},
		OrderBy: []string{"monitor", "yearmonth"},
		Filters: []core.FilterSpec{
			{Param: "monitor", Column: "monitor"},
		},
	})

	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "soho_client_success", Group: "SoHo Team", Label: "Client Success"},
		Source: core.SheetRange{Sheet: SheetSoHo, FirstRow: 3, LastRow: 8},
		Columns: []core.ColumnSpec{
			{Name: "cs_team", Cell: "G", Type: core.FieldText},
			{Name: "high_risk_pct", Cell: "H", Type: core.FieldNumber},
			{Name: "high_risk_clients", Cell: "I", Type: core.FieldNumber},
			{Name: "recent_escalations", Cell: "J", Type: core.FieldNumber},
			{Name: "total_cancelations", Cell: "K", Type: core.FieldNumber},
			{Name: "nps_bcv_score", Cell: "L", Type: core.FieldNumber},
			{Name: "nps_team_score", Cell: "M", Type: core.FieldNumber},
			{Name: "avg_client_age", Cell: "N", Type: core.FieldNumber},
			{Name: "upsells", Cell: "O", Type: core.FieldNumber},
			{Name: "total_score", Cell: "P", Type: core.FieldNumber},
			{Name: "average", Cell: "Q", Type: core.FieldNumber},
			{Name: "target", Cell: "R", Type: core.FieldNumber},
		},
	})

	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "soho_social_content", Group: "SoHo Team", Label: "Social Content Strategy"},
		Source: core.SheetRange{Sheet: SheetSoHo, FirstRow: 15, LastRow: 21},
		Columns: []core.ColumnSpec{
			{Name: "team_member", Cell: "G", Type: core.FieldText},
			{Name: "escalations", Cell: "H", Type: core.FieldNumber},
			{Name: "nps_score", Cell: "I", Type: core.FieldNumber},
			{Name: "index_score", Cell: "J", Type: core.FieldNumber},
			{Name: "average", Cell: "K", Type: core.FieldNumber},
			{Name: "target", Cell: "L", Type: core.FieldNumber},
		},
	})
}

func registerCustomerExperience() {
	// Only numbered rows are agents; the block ends with a text summary row.
	core.Register(core.TableDefinition{
		Info:   core.TableInfo{Key: "customer_experience", Group: "Customer Experience", Label: "Agents"},
		Source: core.SheetRange{Sheet: SheetCustomerExperience, FirstRow: 2, LastRow: 11},
		Columns: []core.ColumnSpec{
			{Name: "serial_no", Cell: "A", Type: core.FieldInteger},
			{Name: "emp_id", Cell: "B", Type: core.FieldText},
			{Name: "name", Cell: "C", Type: core.FieldText},
			{Name: "art_l1_hrs", Cell: "D", Type: core.FieldNumber},
			{Name: "reopen_pct", Cell: "E", Type: core.FieldNumber},
			{Name: "nps", Cell: "F", Type: core.FieldNumber},
			{Name: "csat", Cell: "G", Type: core.FieldNumber},
			{Name: "quality", Cell: "H", Type: core.FieldNumber},
			{Name: "productivity_w1", Cell: "I", Type: core.FieldNumber},
			{Name: "productivity_w2", Cell: "J", Type: core.FieldNumber},
			{Name: "productivity_w3", Cell: "K", Type: core.FieldNumber},
			{Name: "productivity_w4", Cell: "L", Type: core.FieldNumber},
			{Name: "productivity_w5", Cell: "M", Type: core.FieldNumber},
			{Name: "total_tickets", Cell: "N", Type: core.FieldNumber},
			{Name: "avg_daily_tickets", Cell: "O", Type: core.FieldNumber},
			{Name: "working_days", Cell: "P", Type: core.FieldNumber},
		},
		Key:     core.KeyRule{Match: core.KeyNumeric},
		OrderBy: []string{"serial_no"},
	})

	core.Register(core.TableDefinition{
		Info:    core.TableInfo{Key: "customer_experience_notes", Group: "Customer Experience", Label: "Notes"},
		Source:  core.SheetRange{Sheet: SheetCustomerExperience, FirstRow: 13, LastRow: 14},
		Columns: []core.ColumnSpec{{Name: "note", Cell: "A", Type: core.FieldText}},
		Key:     core.KeyRule{Filled: []string{"note"}},
	})
}
