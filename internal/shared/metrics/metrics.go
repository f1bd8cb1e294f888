// Package metrics provides Prometheus metrics for the notification pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tansy"

var (
	dispatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "dispatches_total",
			Help:      "Total dispatch attempts by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	sendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "send_duration_seconds",
			Help:      "Time to deliver a single message",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind"},
	)

	passDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "pass_duration_seconds",
			Help:      "Duration of a full notification pass",
			Buckets:   []float64{.1, .5, 1, 5, 15, 60, 300, 600},
		},
		[]string{"pass"},
	)

	suppressedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "suppressed_total",
			Help:      "Sends skipped because the dispatch ledger already held the tuple",
		},
	)
)

// RecordDispatch records one dispatch attempt outcome.
func RecordDispatch(kind, status string) {
	dispatchesTotal.WithLabelValues(kind, status).Inc()
}

// RecordSendDuration records the delivery latency of a single message.
func RecordSendDuration(kind string, duration time.Duration) {
	sendDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordPassDuration records how long a full pass took.
func RecordPassDuration(pass string, duration time.Duration) {
	passDuration.WithLabelValues(pass).Observe(duration.Seconds())
}

// RecordSuppressed counts a ledger-suppressed send.
func RecordSuppressed() {
	suppressedTotal.Inc()
}
