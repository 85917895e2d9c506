package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_ticket_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "code", "method"},
	)

	TransactionTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_ticket_transaction_transitions_total",
			Help: "Total number of transactions entering a status",
		},
		[]string{"status"},
	)

	SweepProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_ticket_sweep_processed_total",
			Help: "Total number of transactions moved by a sweep job",
		},
		[]string{"job"},
	)

	SweepFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_ticket_sweep_failures_total",
			Help: "Total number of transactions a sweep job failed to move",
		},
		[]string{"job"},
	)

	SweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "event_ticket_sweep_seconds",
			Help:    "Duration of sweep job runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)
)
