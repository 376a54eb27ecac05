package tables

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/wfm/internal/core"
)

//go:embed fixtures/ta_team.yaml
var taTeamYAML []byte

type taTeamFixture struct {
	OpenPositions []struct {
		Month                 string  `yaml:"month"`
		NewCount              int     `yaml:"new_count"`
		ReplacementCount      int     `yaml:"replacement_count"`
		NewPct                float64 `yaml:"new_pct"`
		ReplacementPct        float64 `yaml:"replacement_pct"`
		OfferedNewPct         float64 `yaml:"offered_new_pct"`
		OfferedReplacementPct float64 `yaml:"offered_replacement_pct"`
		OfferedFromClosing    int     `yaml:"offered_from_closing"`
	} `yaml:"open_positions"`

	Leaders []struct {
		LeaderName    string `yaml:"leader_name"`
		OpenPositions int    `yaml:"open_positions"`
	} `yaml:"leaders"`

	Partners []struct {
		TAPartner      string `yaml:"ta_partner"`
		Offered        int    `yaml:"offered"`
		Joinings       int    `yaml:"joinings"`
		AvgTimeToOffer int    `yaml:"avg_time_to_offer"`
	} `yaml:"partners"`
}

var loadTATeam = sync.OnceValues(func() (taTeamFixture, error) {
	var f taTeamFixture
	if err := yaml.Unmarshal(taTeamYAML, &f); err != nil {
		return f, fmt.Errorf("parse ta_team.yaml: %w", err)
	}
	return f, nil
})

// registerTATeam registers the TA Team groups. The sheet is unpopulated, so
// the rows come from the embedded snapshot rather than the workbook.
func registerTATeam() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{Key: "ta_open_positions", Group: "TA Team", Label: "Open Positions"},
		Columns: []core.ColumnSpec{
			{Name: "month", Type: core.FieldText},
			{Name: "new_count", Type: core.FieldInteger},
			{Name: "replacement_count", Type: core.FieldInteger},
			{Name: "new_pct", Type: core.FieldNumber},
			{Name: "replacement_pct", Type: core.FieldNumber},
			{Name: "offered_new_pct", Type: core.FieldNumber},
			{Name: "offered_replacement_pct", Type: core.FieldNumber},
			{Name: "offered_from_closing", Type: core.FieldInteger},
		},
		Fixture: func() ([]core.Record, error) {
			f, err := loadTATeam()
			if err != nil {
				return nil, err
			}
			rows := make([]core.Record, len(f.OpenPositions))
			for i, p := range f.OpenPositions {
				rows[i] = core.Record{
					p.Month, p.NewCount, p.ReplacementCount, p.NewPct, p.ReplacementPct,
					p.OfferedNewPct, p.OfferedReplacementPct, p.OfferedFromClosing,
				}
			}
			return rows, nil
		},
	})

	core.Register(core.TableDefinition{
		Info: core.TableInfo{Key: "ta_leader_positions", Group: "TA Team", Label: "Leader Positions"},
		Columns: []core.ColumnSpec{
			{Name: "leader_name", Type: core.FieldText},
			{Name: "open_positions", Type: core.FieldInteger},
		},
		Fixture: func() ([]core.Record, error) {
			f, err := loadTATeam()
			if err != nil {
				return nil, err
			}
			rows := make([]core.Record, len(f.Leaders))
			for i, l := range f.Leaders {
				rows[i] = core.Record{l.LeaderName, l.OpenPositions}
			}
			return rows, nil
		},
	})

	core.Register(core.TableDefinition{
		Info: core.TableInfo{Key: "ta_partner_performance", Group: "TA Team", Label: "Partner Performance"},
		Columns: []core.ColumnSpec{
			{Name: "ta_partner", Type: core.FieldText},
			{Name: "offered", Type: core.FieldInteger},
			{Name: "joinings", Type: core.FieldInteger},
			{Name: "avg_time_to_offer", Type: core.FieldInteger},
		},
		Fixture: func() ([]core.Record, error) {
			f, err := loadTATeam()
			if err != nil {
				return nil, err
			}
			rows := make([]core.Record, len(f.Partners))
			for i, p := range f.Partners {
				rows[i] = core.Record{p.TAPartner, p.Offered, p.Joinings, p.AvgTimeToOffer}
			}
			return rows, nil
		},
	})
}
