package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollerCheckTipTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockmatrix",
		Subsystem: "poller",
		Name:      "check_tip_total",
		Help:      "Count of chain tip checks.",
	}, []string{"network", "status"})

	pollerCheckTipDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockmatrix",
		Subsystem: "poller",
		Name:      "check_tip_duration_seconds",
		Help:      "Duration of chain tip checks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	pollerProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockmatrix",
		Subsystem: "poller",
		Name:      "process_block_total",
		Help:      "Count of new blocks transformed and persisted.",
	}, []string{"network", "status"})

	pollerProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockmatrix",
		Subsystem: "poller",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of transforming and persisting a block.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"network", "status"})

	pollerBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockmatrix",
		Subsystem: "poller",
		Name:      "block_transactions",
		Help:      "Number of transactions processed per block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"network"})

	pollerLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockmatrix",
		Subsystem: "poller",
		Name:      "last_block_height",
		Help:      "Height of the most recently persisted block.",
	}, []string{"network"})
)

// Poller tracks metrics for the tip polling loop.
type Poller struct {
	network model.Network
}

// NewPoller constructs a Poller metrics collector.
func NewPoller(network model.Network) *Poller {
	return &Poller{network: orUnknown(network)}
}

// ObserveCheckTip records a tip check outcome and duration.
func (m Poller) ObserveCheckTip(err error, started time.Time) {
	status := statusLabel(err)
	pollerCheckTipTotal.WithLabelValues(string(m.network), status).Inc()
	pollerCheckTipDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBlock records processing of a new tip.
func (m Poller) ObserveProcessBlock(err error, height int64, transactions int, started time.Time) {
	status := statusLabel(err)
	pollerProcessBlockTotal.WithLabelValues(string(m.network), status).Inc()
	pollerProcessBlockDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	pollerBlockTransactions.WithLabelValues(string(m.network)).Observe(float64(transactions))
	pollerLastHeight.WithLabelValues(string(m.network)).Set(float64(height))
}
