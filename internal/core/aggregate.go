package core

import (
	"sort"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ManagerSummary rolls up the employees led by one manager.
type ManagerSummary struct {
	Manager   string      `json:"manager"`
	TeamName  pgtype.Text `json:"team_name"`
	Total     int         `json:"total"`
	Active    int         `json:"active"`
	Inactive  int         `json:"inactive"`
	AvgQ1     *float64    `json:"avg_q1"`
	AvgQ2     *float64    `json:"avg_q2"`
	AvgQ3     *float64    `json:"avg_q3"`
	Employees []Employee  `json:"employees"`
}

// managerAccumulator collects one group's running state.
type managerAccumulator struct {
	teamName pgtype.Text
	total    int
	active   int
	q1       []float64
	q2       []float64
	q3       []float64
	members  []Employee
}

func (a *managerAccumulator) add(e Employee) {
	a.members = append(a.members, e)
	a.total++
	if e.Status.Valid && e.Status.String == ActiveStatus {
		a.active++
	}
	if e.Q1Performance.Valid {
		a.q1 = append(a.q1, e.Q1Performance.Float64)
	}
	if e.Q2Performance.Valid {
		a.q2 = append(a.q2, e.Q2Performance.Float64)
	}
	if e.Q3Performance.Valid {
		a.q3 = append(a.q3, e.Q3Performance.Float64)
	}
}

// GroupByManager partitions employees by team_lead_by.
//
// Employees without a manager are ignored. Averages cover non-null scores
// only and are rounded to 2 decimal places; a quarter with no scores has a
// nil average. The team name comes from the first member seen. Members keep
// their input order and groups are sorted by manager name.
func GroupByManager(employees []Employee) []ManagerSummary {
	groups := make(map[string]*managerAccumulator)
	for _, e := range employees {
		if !e.TeamLeadBy.Valid || e.TeamLeadBy.String == "" {
			continue
		}
		acc, ok := groups[e.TeamLeadBy.String]
		if !ok {
			acc = &managerAccumulator{teamName: e.TeamName}
			groups[e.TeamLeadBy.String] = acc
		}
		acc.add(e)
	}

	result := make([]ManagerSummary, 0, len(groups))
	for manager, acc := range groups {
		result = append(result, ManagerSummary{
			Manager:   manager,
			TeamName:  acc.teamName,
			Total:     acc.total,
			Active:    acc.active,
			Inactive:  acc.total - acc.active,
			AvgQ1:     average(acc.q1),
			AvgQ2:     average(acc.q2),
			AvgQ3:     average(acc.q3),
			Employees: acc.members,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Manager < result[j].Manager
	})
	return result
}

// average returns the mean rounded to 2 places, or nil for no values.
func average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(values)))).Round(2).Float64()
	return &avg
}
