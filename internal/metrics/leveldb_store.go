package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leveldbStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "leveldb_store",
		Name:      "operations_total",
		Help:      "Count of ledger store operations.",
	}, []string{"operation", "chain", "status"})
	leveldbStoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "leveldb_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger store operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"operation", "chain", "status"})
)

// LevelDBStore tracks metrics for the LevelDB ledger store.
type LevelDBStore struct {
	chain string
}

// NewLevelDBStore creates a LevelDBStore metrics collector.
func NewLevelDBStore(chain string) *LevelDBStore {
	return &LevelDBStore{chain: chainLabel(chain)}
}

// Observe records duration and status of a store operation.
func (m LevelDBStore) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)

	leveldbStoreOperationsTotal.WithLabelValues(operation, m.chain, status).Inc()
	leveldbStoreOperationDuration.WithLabelValues(operation, m.chain, status).Observe(time.Since(started).Seconds())
}
