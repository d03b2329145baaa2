package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	transfersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sender",
			Name:      "transfers_total",
			Help:      "Total number of transfer attempts by outcome",
		},
		[]string{"result"}, // success or the failure kind
	)

	transferDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sender",
			Name:      "transfer_duration_seconds",
			Help:      "Time from submission start to confirmation or failure",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
	)

	transferInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sender",
			Name:      "transfer_in_progress",
			Help:      "1 while a transfer is being submitted",
		},
	)
)

const ResultSuccess = "success"

// TransferMetrics provides methods to update transfer-related metrics
type TransferMetrics struct{}

func NewTransferMetrics() *TransferMetrics {
	return &TransferMetrics{}
}

// Started marks a submission as in flight
func (m *TransferMetrics) Started() {
	transferInProgress.Set(1)
}

// Finished records the outcome of a submission started at start.
// result is ResultSuccess or a failure kind.
func (m *TransferMetrics) Finished(result string, start time.Time) {
	transferInProgress.Set(0)
	transfersTotal.WithLabelValues(result).Inc()
	transferDuration.Observe(time.Since(start).Seconds())
}
