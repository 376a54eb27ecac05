package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/wfm/internal/core"
)

// handleHealth reports whether the store answers a ping.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "store unavailable", "DB001")
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleListTables returns all tables organized by group.
func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.ListTablesByGroup())
}

// handleImportRuns returns the most recent import passes, newest first.
func (s *Server) handleImportRuns(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", core.DefaultRunLimit)
	runs, err := s.service.ListImportRuns(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, runs)
}

// handleTable returns the rows of one table, narrowed by its declared filters.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	rows, err := s.service.Query(r.Context(), chi.URLParam(r, "table"), queryFilters(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, rows)
}

func (s *Server) handleProductivityGrouped(w http.ResponseWriter, r *http.Request) {
	groups, err := s.service.GroupedProductivity(r.Context(), queryFilters(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, groups)
}

// handleDistinct serves the sorted non-empty values of one column,
// used to populate dashboard dropdowns.
func (s *Server) handleDistinct(table, column string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := s.service.Distinct(r.Context(), table, column)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		writeJSON(w, values)
	}
}

// queryFilters turns the query string into filters, first value wins.
func queryFilters(r *http.Request) core.Filters {
	q := r.URL.Query()
	if len(q) == 0 {
		return nil
	}
	filters := make(core.Filters, len(q))
	for param, values := range q {
		if len(values) > 0 {
			filters[param] = values[0]
		}
	}
	return filters
}

// parseIntParam parses a positive integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}
