package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChecksTotal tracks completed live checks by outcome (live, not_live, error)
	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_checks_total",
			Help: "Completed live checks by outcome",
		},
		[]string{"outcome"},
	)

	// CheckDuration tracks end-to-end check latency (resolution + detection)
	CheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "live_check_duration_seconds",
			Help:    "End-to-end live check duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
	)

	// ResolutionsTotal tracks channel-ID resolutions by method
	// (direct, substring, fetched, failed)
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "channel_resolutions_total",
			Help: "Channel-ID resolutions by method",
		},
		[]string{"method"},
	)

	// PollRunsTotal tracks background poller runs by status (ok, error, skipped)
	PollRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poll_runs_total",
			Help: "Background poller runs by status",
		},
		[]string{"status"},
	)

	// NotificationsTotal tracks sink deliveries by kind and status
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification sink deliveries by kind and status",
		},
		[]string{"kind", "status"},
	)
)
