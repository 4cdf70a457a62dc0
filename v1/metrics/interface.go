package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/scopedlog/v1/redact"
)

// MetricsCollector provides an interface for collecting and exposing application metrics.
// It abstracts Prometheus metric operations with support for counters, histograms, and gauges.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// Default metric methods

	// IncrementRecords increments the emitted-record counter for a log level.
	IncrementRecords(level string)

	// IncrementRedactions increments the redacted-field counter for a strategy.
	IncrementRedactions(strategy string)

	// RecordRequestDuration records the duration (in seconds) for a wrapped handler.
	RecordRequestDuration(start time.Time, handler string)

	// RedactionObserver returns an observer that feeds redaction events
	// into the fields_redacted_total counter.
	RedactionObserver() redact.Observer

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
