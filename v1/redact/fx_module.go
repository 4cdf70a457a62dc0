package redact

import "go.uber.org/fx"

// FXModule defines the Fx module for the redact package.
// It compiles a PolicyConfig from the dependency injection container into
// the immutable *Policy consumed by the logger.
//
// Usage:
//
//	app := fx.New(
//	    redact.FXModule,
//	    fx.Provide(func() redact.PolicyConfig {
//	        return redact.PolicyConfig{
//	            Keys:            []string{"password", "api_key"},
//	            DefaultStrategy: "mask",
//	        }
//	    }),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A redact.PolicyConfig instance must be available in the dependency injection container
var FXModule = fx.Module("redact",
	fx.Provide(
		NewPolicyFromConfig,
	),
)

// NewPolicyFromConfig compiles the configuration into a Policy. It exists
// as a named constructor so Fx error output points at this package when a
// policy is malformed.
func NewPolicyFromConfig(cfg PolicyConfig) (*Policy, error) {
	return cfg.Compile()
}
