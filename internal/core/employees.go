package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jmoiron/sqlx"
)

// EmployeesTable is the table group holding employee-level productivity rows.
const EmployeesTable = "productivity_emp"

// ActiveStatus is the status value counted as active.
const ActiveStatus = "Active"

// Employee is one productivity_emp row.
type Employee struct {
	ID             int64         `db:"id" json:"id"`
	EmpID          pgtype.Text   `db:"emp_id" json:"emp_id"`
	EmployeeName   pgtype.Text   `db:"employee_name" json:"employee_name"`
	JoiningDate    pgtype.Text   `db:"joining_date" json:"joining_date"`
	Designation    pgtype.Text   `db:"designation" json:"designation"`
	Tenure         pgtype.Text   `db:"tenure" json:"tenure"`
	ShiftRole      pgtype.Text   `db:"shift_role" json:"shift_role"`
	TeamName       pgtype.Text   `db:"team_name" json:"team_name"`
	ManagerName    pgtype.Text   `db:"manager_name" json:"manager_name"`
	TeamLeadBy     pgtype.Text   `db:"team_lead_by" json:"team_lead_by"`
	Q1Performance  pgtype.Float8 `db:"q1_performance" json:"q1_performance"`
	Q2Performance  pgtype.Float8 `db:"q2_performance" json:"q2_performance"`
	Q3Performance  pgtype.Float8 `db:"q3_performance" json:"q3_performance"`
	ExitType       pgtype.Text   `db:"exit_type" json:"exit_type"`
	LastWorkingDay pgtype.Text   `db:"last_working_day" json:"last_working_day"`
	Comment        pgtype.Text   `db:"comment" json:"comment"`
	Q3CTC          pgtype.Float8 `db:"q3_ctc" json:"q3_ctc"`
	Status         pgtype.Text   `db:"status" json:"status"`
	DateOfExit     pgtype.Text   `db:"date_of_exit" json:"date_of_exit"`
	StatusQWise    pgtype.Text   `db:"status_q_wise" json:"status_q_wise"`
	Take           pgtype.Text   `db:"take" json:"take"`
}

var employeeColumns = []string{
	"id", "emp_id", "employee_name", "joining_date", "designation", "tenure",
	"shift_role", "team_name", "manager_name", "team_lead_by",
	"q1_performance", "q2_performance", "q3_performance",
	"exit_type", "last_working_day", "comment", "q3_ctc", "status",
	"date_of_exit", "status_q_wise", "take",
}

// ListEmployees returns productivity rows matching filters.
//
// With withLead set, only rows with a non-empty team_lead_by are returned,
// ordered by team_lead_by then employee_name; otherwise the table's own
// display order applies.
func (s *Service) ListEmployees(ctx context.Context, filters Filters, withLead bool) (emps []Employee, err error) {
	defer observe(EmployeesTable, "employees", time.Now(), &err)

	def, ok := Get(EmployeesTable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, EmployeesTable)
	}

	where, args := buildWhere(def, filters)

	order := orderClause(def.OrderBy)
	if withLead {
		lead := quoteIdentifier("team_lead_by")
		cond := lead + " IS NOT NULL AND " + lead + " <> ''"
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		order = orderClause([]string{"team_lead_by", "employee_name"})
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s",
		quoteColumns(employeeColumns), quoteIdentifier(EmployeesTable), where, order)

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	emps = []Employee{}
	if err := sqlx.SelectContext(ctx, conn, &emps, conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return emps, nil
}

// GroupedProductivity returns the manager-grouped productivity view for filters.
func (s *Service) GroupedProductivity(ctx context.Context, filters Filters) ([]ManagerSummary, error) {
	emps, err := s.ListEmployees(ctx, filters, true)
	if err != nil {
		return nil, err
	}
	return GroupByManager(emps), nil
}
