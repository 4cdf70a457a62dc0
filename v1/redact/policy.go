package redact

import (
	"fmt"
	"strings"
)

// Policy declares which field names are sensitive and how their values are
// transformed. A policy is immutable once constructed and safe to share
// read-only across every redaction call for a logger's lifetime.
type Policy struct {
	// keys holds the lowercased membership set; matching against log
	// record keys is case-insensitive.
	keys map[string]struct{}

	// overrides holds per-key strategies under their exact registered
	// spelling. loweredOverrides indexes the same strategies by
	// lowercased key for the case-insensitive second matching tier.
	overrides        map[string]Strategy
	loweredOverrides map[string]Strategy

	defaultStrategy Strategy

	observer Observer
}

// NewPolicy builds a policy from the set of sensitive key names, optional
// per-key strategy overrides and a default strategy applied to matched
// keys without an override.
//
// Two overrides whose keys differ only in casing target the same logical
// key; rather than silently picking one, construction fails with
// ErrAmbiguousOverride.
func NewPolicy(keys []string, overrides map[string]Strategy, defaultStrategy Strategy) (*Policy, error) {
	keySet := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keySet[strings.ToLower(k)] = struct{}{}
	}

	exact := make(map[string]Strategy, len(overrides))
	lowered := make(map[string]Strategy, len(overrides))
	for k, s := range overrides {
		lk := strings.ToLower(k)
		if _, dup := lowered[lk]; dup {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousOverride, lk)
		}
		exact[k] = s
		lowered[lk] = s
	}

	return &Policy{
		keys:             keySet,
		overrides:        exact,
		loweredOverrides: lowered,
		defaultStrategy:  defaultStrategy,
	}, nil
}

// MustNewPolicy is like NewPolicy but panics on error. Intended for
// statically known policies declared at package init.
func MustNewPolicy(keys []string, overrides map[string]Strategy, defaultStrategy Strategy) *Policy {
	p, err := NewPolicy(keys, overrides, defaultStrategy)
	if err != nil {
		panic(err)
	}
	return p
}

// WithObserver attaches an observer notified once per redacted key. It
// returns the same policy for chaining and must be called before the
// policy is shared between goroutines.
func (p *Policy) WithObserver(observer Observer) *Policy {
	p.observer = observer
	return p
}

// Match reports whether key is subject to redaction and resolves the
// strategy to apply. Membership is tested case-insensitively. Strategy
// resolution prefers an override registered under the exact spelling of
// key, then an override registered under any casing of key, then the
// policy default.
func (p *Policy) Match(key string) (Strategy, bool) {
	if _, ok := p.keys[strings.ToLower(key)]; !ok {
		return Strategy{}, false
	}
	if s, ok := p.overrides[key]; ok {
		return s, true
	}
	if s, ok := p.loweredOverrides[strings.ToLower(key)]; ok {
		return s, true
	}
	return p.defaultStrategy, true
}
