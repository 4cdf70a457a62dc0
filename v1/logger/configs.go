package logger

import "github.com/Aleph-Alpha/scopedlog/v1/redact"

// Log level names accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level is the minimum level emitted: "debug", "info", "warning" or
	// "error". Anything else falls back to "info".
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every record as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	// Format selects the output encoding: "json" (default) or "console".
	Format string `yaml:"format" envconfig:"ZAP_LOGGER_FORMAT"`

	// EnableTracing enables extraction of trace and span IDs from the
	// context in the *WithContext logging methods.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// Redaction is the optional redaction policy. When set, every
	// record's merged field map passes through the policy once before
	// formatting. Fixed at logger creation; child loggers derived with
	// With inherit it.
	Redaction *redact.Policy `yaml:"-" envconfig:"-"`

	// Metrics is the optional record counter. When set, every emitted
	// record increments it with the record's level; the metrics package's
	// *Metrics feeds this into log_records_total. Child loggers derived
	// with With inherit it.
	Metrics RecordCounter `yaml:"-" envconfig:"-"`
}
