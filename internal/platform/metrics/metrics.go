package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelter_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shelter_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	// outcome: ok, validation, not_found, conflict, unavailable, error
	DBOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelter_db_operations_total",
			Help: "Total number of database operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shelter_db_operation_duration_seconds",
			Help:    "Duration of database operations (acquire + statement) in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBAcquiredConns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shelter_db_acquired_connections",
			Help: "Connections currently checked out of the pool",
		},
	)
)
