package redact

import "errors"

// Common policy construction errors
var (
	// ErrUnknownStrategy is returned when a textual strategy descriptor
	// does not name a built-in strategy.
	ErrUnknownStrategy = errors.New("redact: unknown strategy descriptor")

	// ErrAmbiguousOverride is returned when two strategy overrides are
	// registered for the same logical key under different casings. The
	// policy refuses to pick an arbitrary winner.
	ErrAmbiguousOverride = errors.New("redact: ambiguous strategy override casing")
)

// IsUnknownStrategyError checks if the error is an unknown strategy descriptor error.
func IsUnknownStrategyError(err error) bool {
	return errors.Is(err, ErrUnknownStrategy)
}

// IsAmbiguousOverrideError checks if the error is an ambiguous override casing error.
func IsAmbiguousOverrideError(err error) bool {
	return errors.Is(err, ErrAmbiguousOverride)
}
