package core

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/JonMunkholm/wfm/internal/metrics"
)

// Query returns the rows of a table that match every non-empty filter,
// in the table's fixed display order.
//
// A filter whose value matches nothing yields an empty slice, not an error.
func (s *Service) Query(ctx context.Context, table string, filters Filters) (rows []TableRow, err error) {
	defer observe(table, "rows", time.Now(), &err)

	def, ok := Get(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	where, args := buildWhere(def, filters)

	cols := append([]string{"id"}, def.Info.Columns...)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s",
		quoteColumns(cols), quoteIdentifier(def.Info.Key), where, orderClause(def.OrderBy))

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	rs, err := conn.QueryxContext(ctx, conn.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rs.Close()

	rows = []TableRow{}
	for rs.Next() {
		row := make(map[string]any, len(cols))
		if err := rs.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		for k, v := range row {
			row[k] = normalizeValue(v)
		}
		rows = append(rows, TableRow(row))
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return rows, nil
}

// Distinct returns the sorted, non-null distinct values of one column.
// Empty text values are left out.
func (s *Service) Distinct(ctx context.Context, table, column string) (values []string, err error) {
	defer observe(table, "distinct", time.Now(), &err)

	def, ok := Get(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	spec, ok := def.column(column)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, column)
	}

	col := quoteIdentifier(spec.Name)
	cond := col + " IS NOT NULL"
	if spec.Type == FieldText || spec.Type == FieldDate {
		cond += " AND " + col + " <> ''"
	}
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s ORDER BY %s",
		col, quoteIdentifier(def.Info.Key), cond, col)

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	rs, err := conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s.%s: %w", table, column, err)
	}
	defer rs.Close()

	values = []string{}
	for rs.Next() {
		var v any
		if err := rs.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s.%s: %w", table, column, err)
		}
		values = append(values, stringify(normalizeValue(v)))
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s.%s: %w", table, column, err)
	}
	return values, nil
}

// buildWhere turns caller filters into an AND of equalities.
// Parameters the table does not declare are ignored, as are empty values.
// Placeholders are written as ? for Rebind.
func buildWhere(def TableDefinition, filters Filters) (string, []any) {
	params := make([]string, 0, len(filters))
	for p := range filters {
		if _, ok := def.filterColumn(p); !ok {
			slog.Debug("ignoring undeclared filter", "table", def.Info.Key, "param", p)
			continue
		}
		params = append(params, p)
	}
	sort.Strings(params)

	var conds []string
	var args []any
	for _, p := range params {
		v := filters[p]
		if v == "" {
			continue
		}
		col, _ := def.filterColumn(p)
		conds = append(conds, quoteIdentifier(col)+" = ?")
		args = append(args, v)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause appends id so rows with equal sort keys keep insertion order.
func orderClause(orderBy []string) string {
	cols := make([]string, 0, len(orderBy)+1)
	for _, c := range orderBy {
		cols = append(cols, quoteIdentifier(c))
	}
	cols = append(cols, quoteIdentifier("id"))
	return strings.Join(cols, ", ")
}

// normalizeValue converts driver byte slices to strings for JSON output.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func observe(table, kind string, start time.Time, err *error) {
	if _, ok := Get(table); !ok {
		table = "unknown"
	}
	metrics.QueryDuration.WithLabelValues(table, kind).Observe(time.Since(start).Seconds())
	if *err != nil {
		metrics.QueryErrors.WithLabelValues(table).Inc()
	}
}
