// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastetrack_notifications_emitted_total",
			Help: "Total number of notifications written to resident feeds",
		},
		[]string{"kind"},
	)

	NotificationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastetrack_notifications_failed_total",
			Help: "Total number of notification writes that failed",
		},
		[]string{"kind"},
	)

	RouteStatusWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastetrack_route_status_writes_total",
			Help: "Total number of collection status upserts applied",
		},
		[]string{"status"},
	)

	StopsSweptMissed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wastetrack_stops_swept_missed_total",
			Help: "Total number of stops turned into missed by the end-of-day sweep",
		},
	)

	SweepRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastetrack_sweep_runs_total",
			Help: "Total number of sweep runs by trigger and outcome",
		},
		[]string{"trigger", "outcome"},
	)

	PushDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastetrack_push_deliveries_total",
			Help: "Total number of push messages handed to FCM by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wastetrack_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status class",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wastetrack_db_query_duration_seconds",
			Help:    "Database statement latency by outcome",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"outcome"},
	)

	DBPoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wastetrack_db_pool_connections",
			Help: "Database pool connections by state",
		},
		[]string{"state"},
	)

	DBPoolWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wastetrack_db_pool_waits_total",
			Help: "Total number of times a statement waited for a pooled connection",
		},
	)
)
