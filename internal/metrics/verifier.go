package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifierTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_verifier",
		Name:      "verify_total",
		Help:      "Count of stored block verifications by outcome.",
	}, []string{"chain", "status"})
	verifierDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_verifier",
		Name:      "verify_duration_seconds",
		Help:      "Duration of verifying a stored block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})
)

// Verifier tracks metrics for stored block verification.
type Verifier struct {
	chain string
}

func NewVerifier(chain string) *Verifier {
	return &Verifier{chain: chainLabel(chain)}
}

// ObserveVerify records one verification.
func (m Verifier) ObserveVerify(err error, started time.Time) {
	status := statusLabel(err)
	verifierTotal.WithLabelValues(m.chain, status).Inc()
	verifierDuration.WithLabelValues(m.chain, status).Observe(time.Since(started).Seconds())
}
