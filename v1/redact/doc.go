// Package redact provides recursive, policy-driven redaction of sensitive
// fields in log records before they are emitted.
//
// A Policy declares which field names are sensitive (matched
// case-insensitively), which Strategy transforms each matched value, and a
// default strategy for matched keys without an override. The engine walks
// an arbitrary value graph, rebuilds a redacted copy, and never mutates
// its input.
//
// # Strategies
//
//   - Mask: replace with a fixed placeholder
//   - Remove: drop the key from the output entirely
//   - Hash: lowercase hex SHA-256 of the string form of strings/numbers
//   - MaskLast(n): reveal only the trailing n characters of a string
//   - Custom(fn): apply a caller-supplied transform verbatim
//
// # Basic Usage
//
//	policy, err := redact.NewPolicy(
//	    []string{"password", "api_key"},
//	    map[string]redact.Strategy{"api_key": redact.MaskLast(4)},
//	    redact.Mask(),
//	)
//	if err != nil {
//	    // handle configuration error
//	}
//
//	out := policy.Redact(map[string]interface{}{
//	    "password": "p1",
//	    "api_key":  "sk-1234567890",
//	    "note":     "ok",
//	})
//	// out: map[api_key:*********7890 note:ok password:*****]
//
// # Matching Semantics
//
// Membership in the policy's key set is case-insensitive, but the output
// preserves the original key spelling. Strategy overrides resolve in two
// tiers: an override registered under the exact spelling of the incoming
// key wins, otherwise any override registered under a different casing of
// the same key applies. Registering two overrides that differ only in
// casing is rejected at construction time.
//
// A matched key is fully replaced by its strategy and never recursed into,
// even when its value is a composite: a matched key is assumed fully
// sensitive.
//
// # Cycles
//
// The walk tracks every composite node it enters by identity. A node
// reached a second time within one top-level call is replaced by the
// CircularMarker constant, so redaction terminates on self-referential
// structures and a truncated cycle is distinguishable from legitimate
// data.
//
// # Configuration
//
// PolicyConfig loads the policy shape from YAML (file or bytes) with
// REDACT_-prefixed environment variable overrides, and Compile builds the
// immutable Policy. The FXModule provides the compiled policy through the
// fx dependency injection container.
//
// # Error Handling
//
// Redaction never fails a log record: unhashable values and malformed
// mask-last-N descriptors degrade to fixed placeholders. Only policy
// construction returns errors. A panic inside a Custom transform is the
// single exception and propagates to the caller unchanged.
//
// # Thread Safety
//
// A compiled Policy is immutable and safe for concurrent use. Each Redact
// call owns a private visited set; the engine performs no I/O and never
// blocks.
package redact
