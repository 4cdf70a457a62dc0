package tracer

// Config defines the configuration structure for the distributed tracing client.
// It controls how the OpenTelemetry tracer provider is set up and whether spans
// are exported to an external collector.
type Config struct {
	// ServiceName identifies the service emitting spans. It is attached to
	// every span as the standard service.name resource attribute, which is
	// how tracing backends group and filter traces.
	//
	// Example:
	//   ServiceName: "document-index"
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable TRACER_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv names the deployment environment the service runs in, for
	// example "development", "staging" or "production". It is attached as
	// the deployment.environment resource attribute.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "app_env" key
	//   - Environment variable TRACER_APP_ENV
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport controls whether spans are exported to an OTLP HTTP
	// collector. When false, spans are still created and trace context is
	// still propagated, but nothing leaves the process. This is the
	// recommended setting for local development and tests.
	//
	// The collector endpoint is taken from the standard OTLP environment
	// variables (OTEL_EXPORTER_OTLP_ENDPOINT and friends).
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_export" key
	//   - Environment variable TRACER_ENABLE_EXPORT
	//
	// Default: false
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}
