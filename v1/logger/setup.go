package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Aleph-Alpha/scopedlog/v1/redact"
)

// RecordCounter counts emitted log records by level. The metrics
// package's *Metrics satisfies it through IncrementRecords; any other
// implementation works as long as it is safe for concurrent use.
type RecordCounter interface {
	IncrementRecords(level string)
}

// Logger is a wrapper around Uber's Zap logger.
// A Logger is an immutable handle: leveled emit methods plus With, which
// derives a child handle with additional bound fields. The redaction
// policy is fixed at creation and shared by every derived child.
type Logger struct {
	// Zap is the underlying zap.Logger instance.
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most logging should go through the wrapper methods.
	Zap *zap.Logger

	// redaction, when non-nil, is applied once to each record's merged
	// field map before conversion to zap fields.
	redaction *redact.Policy

	// tracingEnabled indicates whether the *WithContext methods extract
	// trace and span IDs from the context.
	tracingEnabled bool

	// counter, when non-nil, is notified once per emitted record with the
	// record's level.
	counter RecordCounter

	// bound holds the fields attached to every record emitted through
	// this handle. Never mutated after construction; With copies.
	bound map[string]interface{}
}

// NewLoggerClient initializes and returns a new instance of the logger based on configuration.
//
// The logger is configured with:
//   - JSON encoding for structured logging (console encoding optional)
//   - ISO8601 timestamp format
//   - Capital letter level encoding (e.g., "INFO", "ERROR")
//   - Process ID and service name as default fields
//   - Caller information (file and line) included in log entries
//   - Output directed to stderr
//
// If initialization fails, the function will call log.Fatal to terminate
// the application.
func NewLoggerClient(cfg Config) *Logger {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel

	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	encoding := FormatJSON
	if cfg.Format == FormatConsole {
		encoding = FormatConsole
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zapLogger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))

	if err != nil {
		log.Fatal(err)
	}

	return &Logger{
		Zap:            zapLogger,
		redaction:      cfg.Redaction,
		tracingEnabled: cfg.EnableTracing,
		counter:        cfg.Metrics,
	}
}

// With derives a child logger whose bound fields are this logger's fields
// merged with the given ones; new keys win on conflict. The parent handle
// is not modified. The redaction policy, tracing setting and metrics hook
// carry over.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	merged := make(map[string]interface{}, len(l.bound)+len(fields))
	for k, v := range l.bound {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{
		Zap:            l.Zap,
		redaction:      l.redaction,
		tracingEnabled: l.tracingEnabled,
		counter:        l.counter,
		bound:          merged,
	}
}
