// Package metrics provides Prometheus-based monitoring and metrics collection
// functionality for Go applications.
//
// The metrics package is designed to provide a standardized observability
// approach with features such as configurable HTTP endpoints for metrics exposure,
// automatic runtime instrumentation, and integration with the Fx dependency
// injection framework.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides *Metrics for dependency injection
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Automatic registration of Go runtime and process-level metrics
//   - Built-in counters for emitted log records and redacted fields
//   - Support for custom metric registration (counters, gauges, histograms)
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	import "github.com/Aleph-Alpha/scopedlog/v1/metrics"
//
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "search-store",
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	// Use built-in metrics
//	m.IncrementRecords("info")
//	defer m.RecordRequestDuration(time.Now(), "ingest-document")
//
// # Counting Emitted Records
//
// *Metrics satisfies logger.RecordCounter, so attaching the instance to a
// logger config feeds every emitted record into log_records_total, labeled
// by level:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:   logger.Info,
//	    Metrics: m,
//	})
//
// # Counting Redactions
//
// RedactionObserver bridges the redaction engine into the fields_redacted_total
// counter. Attach it when compiling a policy:
//
//	policy := redact.MustNewPolicy([]string{"password"}, nil, redact.Mask()).
//		WithObserver(m.RedactionObserver())
//
// Each key the policy redacts increments the counter, labeled by the strategy
// that fired. Key names never become label values.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{
//				Address:                 ":9090",
//				EnableDefaultCollectors: true,
//				ServiceName:             "search-store",
//			}
//		}),
//	)
//	app.Run()
//
// # Configuration
//
// The metrics server can be configured via environment variables:
//
//	METRICS_ADDRESS=:9090                      # Port and address for /metrics endpoint
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Enable runtime and process metrics
//	METRICS_SERVICE_NAME=search-store          # Adds service label to all metrics
//
// # Custom Metrics
//
// Applications can register additional Prometheus metrics using the exposed
// factories or the Registry directly:
//
//	hist := m.CreateHistogram("walk_duration_seconds", "Redaction walk latency.", []string{"policy"}, prometheus.DefBuckets)
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
