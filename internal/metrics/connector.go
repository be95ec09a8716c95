// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectorConnectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_connector",
		Name:      "connect_total",
		Help:      "Count of block connection attempts.",
	}, []string{"chain", "status"})

	connectorConnectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_connector",
		Name:      "connect_duration_seconds",
		Help:      "Duration of connecting a block, trie updates and commit included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	connectorBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_connector",
		Name:      "block_transactions",
		Help:      "Number of transactions per connected block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"chain"})

	connectorReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_connector",
		Name:      "reorgs_total",
		Help:      "Count of best chain reorganizations.",
	}, []string{"chain"})

	connectorReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_connector",
		Name:      "reorg_depth",
		Help:      "Number of blocks detached by a reorganization.",
		Buckets:   []float64{1, 2, 3, 4, 6, 10, 20, 50, 100},
	}, []string{"chain"})

	connectorBestHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ledger_connector",
		Name:      "best_height",
		Help:      "Height of the current best tip.",
	}, []string{"chain"})
)

// Connector tracks metrics for block connection and chain selection.
type Connector struct {
	chain string
}

// NewConnector constructs a Connector collector for one chain.
func NewConnector(chain string) *Connector {
	return &Connector{chain: chainLabel(chain)}
}

// ObserveConnect records one connection attempt.
func (m Connector) ObserveConnect(err error, txs int, started time.Time) {
	status := statusLabel(err)
	connectorConnectTotal.WithLabelValues(m.chain, status).Inc()
	connectorConnectDuration.WithLabelValues(m.chain, status).Observe(time.Since(started).Seconds())
	if err == nil {
		connectorBlockTransactions.WithLabelValues(m.chain).Observe(float64(txs))
	}
}

// ObserveReorg records a reorganization of the given depth.
func (m Connector) ObserveReorg(depth int) {
	connectorReorgsTotal.WithLabelValues(m.chain).Inc()
	connectorReorgDepth.WithLabelValues(m.chain).Observe(float64(depth))
}

// ObserveBest records the height of a new best tip.
func (m Connector) ObserveBest(height uint32) {
	connectorBestHeight.WithLabelValues(m.chain).Set(float64(height))
}
