// Package metrics holds the Prometheus collectors for imports, queries and API requests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ImportRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wfm_import_rows_total",
			Help: "Rows inserted by import passes, per table",
		},
		[]string{"table"},
	)

	ImportRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wfm_import_runs_total",
			Help: "Import passes by outcome",
		},
		[]string{"status"},
	)

	ImportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wfm_import_duration_seconds",
			Help:    "Wall time of a full import pass",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wfm_query_duration_seconds",
			Help:    "Table query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"table", "kind"},
	)

	QueryErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wfm_query_errors_total",
			Help: "Table queries that failed",
		},
		[]string{"table"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wfm_http_requests_total",
			Help: "API requests by route pattern and status code",
		},
		[]string{"route", "method", "status"},
	)
)

func init() {
	prometheus.MustRegister(ImportRows, ImportRuns, ImportDuration, QueryDuration, QueryErrors, HTTPRequests)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
