// Package logger provides structured logging functionality for Go applications.
//
// The logger package is designed to provide a standardized logging approach
// with features such as log levels, contextual logging, distributed tracing
// integration, field redaction, and flexible output formatting. It
// integrates with the fx dependency injection framework for easy
// incorporation into applications.
//
// Core Features:
//   - Structured logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warn, Error, Fatal)
//   - Immutable logger handles with bound fields (With)
//   - Policy-driven redaction of sensitive fields before emission
//   - Optional per-level record counting through a metrics hook
//   - Distributed tracing integration with OpenTelemetry
//   - Automatic trace and span ID extraction from context
//   - Configurable output formats (JSON, console)
//
// # Basic Usage
//
//	import "github.com/Aleph-Alpha/scopedlog/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "my-service",
//	})
//
//	// Log with structured fields (without context)
//	log.Info("User logged in", nil, map[string]interface{}{
//	    "user_id": "12345",
//	    "ip":      "192.168.1.1",
//	})
//
//	// Log with trace context (automatically includes trace_id and span_id)
//	log.InfoWithContext(ctx, "Processing request", nil, map[string]interface{}{
//	    "request_id": "abc-123",
//	})
//
// # Bound Fields
//
// With derives a child logger carrying additional fields on every record.
// The child's fields are the parent's fields merged with the new ones;
// new keys win on conflict. The parent handle is never modified:
//
//	reqLog := log.With(map[string]interface{}{"request_id": id})
//	reqLog.Info("handling request", nil, nil)
//
// # Redaction
//
// When Config.Redaction carries a redact.Policy, the merged field map of
// every record passes through the policy exactly once before formatting.
// Matched keys are masked, hashed, partially revealed or removed per the
// policy; the policy is fixed at logger creation and inherited by derived
// children. See the redact package for policy semantics.
//
//	policy := redact.MustNewPolicy([]string{"password"}, nil, redact.Mask())
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:     logger.Info,
//	    Redaction: policy,
//	})
//	log.Info("login", nil, map[string]interface{}{"password": "p1"})
//	// emits password:"*****"
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    // ... other modules
//	)
//	app.Run()
//
// # Configuration
//
// The logger can be configured via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	ZAP_LOGGER_FORMAT=json          # Output format (json, console)
//	LOGGER_ENABLE_TRACING=true      # Enable distributed tracing integration
//
// # Thread Safety
//
// All methods on a Logger are safe for concurrent use by multiple
// goroutines; handles are immutable and redaction produces new values
// rather than mutating shared state.
package logger
