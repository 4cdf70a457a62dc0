package redact

// RedactionContext describes a single redacted key for observability.
type RedactionContext struct {
	// Key is the original (unmodified) spelling of the matched key.
	Key string

	// Strategy is the textual descriptor of the applied strategy,
	// e.g. "mask" or "mask-last-4".
	Strategy string
}

// Observer receives a notification for every key a policy redacts.
// Implementations must be safe for concurrent use; the engine itself
// holds no locks around notification.
type Observer interface {
	ObserveRedaction(ctx RedactionContext)
}

// observeRedaction notifies the observer about a redacted key if one is
// configured. The redaction result itself is never passed along; only the
// key name and strategy descriptor leave the engine.
func (p *Policy) observeRedaction(key string, strategy Strategy) {
	if p == nil || p.observer == nil {
		return
	}
	p.observer.ObserveRedaction(RedactionContext{
		Key:      key,
		Strategy: strategy.Name(),
	})
}
