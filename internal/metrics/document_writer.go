package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentWriterOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockmatrix",
		Subsystem: "document_writer",
		Name:      "operations_total",
		Help:      "Count of document writer operations.",
	}, []string{"operation", "status"})
	documentWriterOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockmatrix",
		Subsystem: "document_writer",
		Name:      "operation_duration_seconds",
		Help:      "Duration of document writer operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"operation", "status"})
)

// DocumentWriter tracks metrics for block document persistence.
type DocumentWriter struct{}

// NewDocumentWriter creates a DocumentWriter metrics collector.
func NewDocumentWriter() *DocumentWriter {
	return &DocumentWriter{}
}

// Observe records duration and status of a writer operation.
func (m DocumentWriter) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	documentWriterOperationsTotal.WithLabelValues(operation, status).Inc()
	documentWriterOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
