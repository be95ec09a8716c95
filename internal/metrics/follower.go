package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_follower",
		Name:      "poll_total",
		Help:      "Count of follower polls of the block source.",
	}, []string{"chain", "status"})

	followerPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_follower",
		Name:      "poll_duration_seconds",
		Help:      "Duration of one follower poll, fetch and connect included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	followerPollSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_follower",
		Name:      "poll_blocks",
		Help:      "Number of blocks connected per poll.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"chain"})

	followerFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_follower",
		Name:      "fetch_block_duration_seconds",
		Help:      "Duration of fetching a single block from the source.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	followerMirrorTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_follower",
		Name:      "mirror_total",
		Help:      "Count of connected block batches mirrored to the relational store.",
	}, []string{"chain", "status"})
)

// Follower tracks metrics for the follower connector service.
type Follower struct {
	chain string
}

// NewFollower constructs a Follower collector with defaults.
func NewFollower(chain string) *Follower {
	return &Follower{chain: chainLabel(chain)}
}

// ObservePoll records one poll cycle.
func (m Follower) ObservePoll(err error, blocks int, started time.Time) {
	status := statusLabel(err)
	followerPollTotal.WithLabelValues(m.chain, status).Inc()
	followerPollDuration.WithLabelValues(m.chain, status).
		Observe(time.Since(started).Seconds())
	followerPollSize.WithLabelValues(m.chain).Observe(float64(blocks))
}

// ObserveFetch records fetching one block.
func (m Follower) ObserveFetch(err error, _ uint32, started time.Time) {
	status := statusLabel(err)
	followerFetchDuration.WithLabelValues(m.chain, status).
		Observe(time.Since(started).Seconds())
}

// ObserveMirror records a mirror flush.
func (m Follower) ObserveMirror(err error) {
	status := statusLabel(err)
	followerMirrorTotal.WithLabelValues(m.chain, status).Inc()
}
