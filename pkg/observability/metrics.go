// Package observability exposes Prometheus metrics for gateway traffic.
// Collectors register on the default registry; serve them with
// promhttp.Handler in the embedding application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_sends_total",
			Help: "Total number of gateway sends by transaction type and outcome",
		},
		[]string{"type", "outcome"},
	)

	sendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_send_duration_seconds",
			Help: "Duration of gateway sends in seconds",
			// Acquirer round trips routinely take seconds, so extend the
			// default buckets upward.
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 65},
		},
		[]string{"type"},
	)
)

// ObserveSend records one gateway exchange. Outcome is "success", "decline"
// or the error category, e.g. "transport_error".
func ObserveSend(transactionType, outcome string, d time.Duration) {
	sendsTotal.WithLabelValues(transactionType, outcome).Inc()
	sendDuration.WithLabelValues(transactionType).Observe(d.Seconds())
}
