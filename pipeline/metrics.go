package pipeline

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "rulingpipe"

// Outcome labels of the documents_total counter.
const (
	LabelConverted   = "converted"
	LabelDegraded    = "degraded"
	LabelSkipped     = "skipped"
	LabelWriteFailed = "write_failed"
)

// Metrics records batch statistics on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	discovered prometheus.Gauge
	documents  *prometheus.CounterVec
	duration   prometheus.Histogram
}

// NewMetrics creates the metric set and registers it on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		discovered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "documents_discovered",
			Help:      "Number of eligible documents found by the last run.",
		}),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "documents_total",
			Help:      "Processed documents by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "document_duration_seconds",
			Help:      "Time spent converting and writing one document.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	m.registry.MustRegister(m.discovered, m.documents, m.duration)
	return m
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// SetDiscovered records the number of eligible documents.
func (m *Metrics) SetDiscovered(n int) {
	if m == nil {
		return
	}
	m.discovered.Set(float64(n))
}

// ObserveDocument counts a document under outcome and records its duration.
func (m *Metrics) ObserveDocument(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// WriteTextfile writes the registry to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
