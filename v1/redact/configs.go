package redact

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the environment variable prefix recognized when loading a
// policy, e.g. REDACT_DEFAULT_STRATEGY=hash.
const envPrefix = "REDACT_"

// PolicyConfig is the external configuration shape of a redaction policy.
// It mirrors the policy input contract verbatim:
//
//	keys:
//	  - password
//	  - api_key
//	strategies:
//	  api_key: mask-last-4
//	default_strategy: mask
//
// Strategy values are textual descriptors accepted by ParseStrategy.
type PolicyConfig struct {
	// Keys lists the field names subject to redaction.
	// Matching against log record keys is case-insensitive.
	Keys []string `koanf:"keys"`

	// Strategies maps a key name to a strategy descriptor, overriding
	// the default strategy for that key.
	Strategies map[string]string `koanf:"strategies"`

	// DefaultStrategy is applied to any matched key without an override.
	// Empty means "mask".
	DefaultStrategy string `koanf:"default_strategy"`
}

// ParsePolicyConfig decodes a PolicyConfig from YAML bytes and overlays
// REDACT_-prefixed environment variables on top.
func ParsePolicyConfig(content []byte) (PolicyConfig, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return PolicyConfig{}, fmt.Errorf("failed to parse policy config: %w", err)
		}
	}

	// Environment overrides: REDACT_DEFAULT_STRATEGY -> default_strategy
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return PolicyConfig{}, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg PolicyConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return PolicyConfig{}, fmt.Errorf("failed to unmarshal policy config: %w", err)
	}
	return cfg, nil
}

// LoadPolicyConfig reads a YAML policy file from path and decodes it via
// ParsePolicyConfig, including environment overrides.
func LoadPolicyConfig(path string) (PolicyConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return PolicyConfig{}, fmt.Errorf("failed to read policy config %s: %w", path, err)
	}
	return ParsePolicyConfig(content)
}

// Compile resolves the textual strategy descriptors and builds the
// immutable Policy.
func (c PolicyConfig) Compile() (*Policy, error) {
	defaultStrategy, err := ParseStrategy(c.DefaultStrategy)
	if err != nil {
		return nil, fmt.Errorf("invalid default strategy: %w", err)
	}

	overrides := make(map[string]Strategy, len(c.Strategies))
	for key, descriptor := range c.Strategies {
		s, err := ParseStrategy(descriptor)
		if err != nil {
			return nil, fmt.Errorf("invalid strategy for key %q: %w", key, err)
		}
		overrides[key] = s
	}

	return NewPolicy(c.Keys, overrides, defaultStrategy)
}
