// Package metrics defines Prometheus metrics for audit message generation.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	MessagesBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atna_messages_built_total",
			Help: "Total audit messages built and rendered",
		},
		[]string{"event", "format"},
	)

	MessageFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atna_message_failures_total",
			Help: "Total audit message requests that failed validation, construction or rendering",
		},
		[]string{"event"},
	)

	RenderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "atna_render_duration_seconds",
			Help:    "Time spent rendering one audit message",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		},
		[]string{"format"},
	)

	QueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "atna_emit_queue_depth",
			Help: "Current emit worker queue depth",
		},
	)

	BatchInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "atna_batch_in_flight",
			Help: "Batch requests currently being rendered",
		},
	)
)

func init() {
	prometheus.MustRegister(
		MessagesBuilt, MessageFailures, RenderDuration,
		QueueDepth, BatchInFlight,
	)
}
