package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/scopedlog/v1/redact"
)

// IncrementRecords increments the emitted-record counter for a log level.
// *Metrics satisfies logger.RecordCounter through this method, so setting
// the instance as logger.Config.Metrics counts every emitted record:
//
//	log := logger.NewLoggerClient(logger.Config{Metrics: metricsInstance})
func (m *Metrics) IncrementRecords(level string) {
	m.recordsEmitted.WithLabelValues(level).Inc()
}

// IncrementRedactions increments the redacted-field counter for a strategy.
// Example: metrics.IncrementRedactions("mask-last-4")
func (m *Metrics) IncrementRedactions(strategy string) {
	m.fieldsRedacted.WithLabelValues(strategy).Inc()
}

// RecordRequestDuration records the duration (in seconds) for a wrapped handler.
// Example: defer metrics.RecordRequestDuration(time.Now(), "ingest-document")
func (m *Metrics) RecordRequestDuration(start time.Time, handler string) {
	duration := time.Since(start).Seconds()
	m.requestDuration.WithLabelValues(handler).Observe(duration)
}

// RedactionObserver returns an observer that counts every redacted field
// under the fields_redacted_total metric, labeled by strategy. Attach it to
// a policy to see how often each rule fires:
//
//	policy = policy.WithObserver(metricsInstance.RedactionObserver())
func (m *Metrics) RedactionObserver() redact.Observer {
	return redactionObserver{metrics: m}
}

// redactionObserver bridges redaction notifications into the counter. Only
// the strategy name reaches the metric; key names stay out of label values
// to keep cardinality bounded.
type redactionObserver struct {
	metrics *Metrics
}

func (o redactionObserver) ObserveRedaction(ctx redact.RedactionContext) {
	o.metrics.IncrementRedactions(ctx.Strategy)
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec safely for resource monitoring.
// Used internally by NewMetrics to track resource utilization.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
