package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// mergeFields flattens the bound fields and the optional per-call field
// maps into one record. Later maps override earlier ones; per-call fields
// override bound fields.
func (l *Logger) mergeFields(fields ...map[string]interface{}) map[string]interface{} {
	size := len(l.bound)
	for _, fieldMap := range fields {
		size += len(fieldMap)
	}
	if size == 0 {
		return nil
	}

	merged := make(map[string]interface{}, size)
	for k, v := range l.bound {
		merged[k] = v
	}
	for _, fieldMap := range fields {
		for k, v := range fieldMap {
			merged[k] = v
		}
	}
	return merged
}

// convertToZapFields converts an error and additional field maps into Zap's
// structured logging fields. This is the single emit hook: the merged
// record passes through the redaction policy exactly once, then the
// (possibly redacted) fields are handed to Zap for formatting.
func (l *Logger) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	merged := l.mergeFields(fields...)

	if l.redaction != nil && merged != nil {
		if redacted, ok := l.redaction.Redact(merged).(map[string]interface{}); ok {
			merged = redacted
		}
	}

	zapFields := make([]zap.Field, 0, len(merged)+1)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	for key, value := range merged {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}

// contextFields extracts trace correlation fields from ctx when tracing
// is enabled and a valid span is active.
func (l *Logger) contextFields(ctx context.Context) map[string]interface{} {
	if !l.tracingEnabled {
		return nil
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return nil
	}
	return map[string]interface{}{
		"trace_id": sc.TraceID().String(),
		"span_id":  sc.SpanID().String(),
	}
}

// countRecord notifies the optional metrics hook about an emitted record.
func (l *Logger) countRecord(level string) {
	if l.counter != nil {
		l.counter.IncrementRecords(level)
	}
}

// Debug logs a debug-level message, useful for development and troubleshooting.
//
// Example:
//
//	log.Debug("Processing request", nil, map[string]interface{}{
//	    "request_id": "abc-123",
//	    "payload_size": 1024,
//	})
func (l *Logger) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.countRecord(Debug)
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Info logs an informational message, along with an optional error and
// structured fields. Use Info for general application progress and
// successful operations.
//
// Example:
//
//	log.Info("User logged in successfully", nil, map[string]interface{}{
//	    "user_id": 12345,
//	    "login_method": "oauth",
//	})
func (l *Logger) Info(msg string, err error, fields ...map[string]interface{}) {
	l.countRecord(Info)
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, indicating potential issues that aren't
// necessarily errors.
func (l *Logger) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.countRecord(Warning)
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and
// additional context fields.
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	l.countRecord(Error)
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs a critical error message and terminates the application.
// This method calls os.Exit(1) after logging the message and does not
// return.
func (l *Logger) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.countRecord("fatal")
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}

// DebugWithContext logs a debug-level message with trace correlation
// fields extracted from ctx when tracing is enabled.
func (l *Logger) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.countRecord(Debug)
	l.Zap.Debug(msg, l.convertToZapFields(err, append([]map[string]interface{}{l.contextFields(ctx)}, fields...)...)...)
}

// InfoWithContext logs an informational message with trace correlation
// fields extracted from ctx when tracing is enabled.
//
// Example:
//
//	log.InfoWithContext(ctx, "Processing request", nil, map[string]interface{}{
//	    "request_id": "abc-123",
//	})
func (l *Logger) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.countRecord(Info)
	l.Zap.Info(msg, l.convertToZapFields(err, append([]map[string]interface{}{l.contextFields(ctx)}, fields...)...)...)
}

// WarnWithContext logs a warning message with trace correlation fields
// extracted from ctx when tracing is enabled.
func (l *Logger) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.countRecord(Warning)
	l.Zap.Warn(msg, l.convertToZapFields(err, append([]map[string]interface{}{l.contextFields(ctx)}, fields...)...)...)
}

// ErrorWithContext logs an error message with trace correlation fields
// extracted from ctx when tracing is enabled.
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.countRecord(Error)
	l.Zap.Error(msg, l.convertToZapFields(err, append([]map[string]interface{}{l.contextFields(ctx)}, fields...)...)...)
}
