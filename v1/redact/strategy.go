package redact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder constants used by the built-in strategies.
const (
	// MaskPlaceholder replaces a fully masked value regardless of its
	// original type or length.
	MaskPlaceholder = "*****"

	// HashFailedPlaceholder replaces values the hash strategy cannot
	// digest (anything other than a string or a number).
	HashFailedPlaceholder = "[HASH_FAILED]"

	// CircularMarker replaces a composite value that has already been
	// visited during the current redaction pass. It is a distinguishable
	// constant so consumers and tests can tell a truncated cycle apart
	// from legitimate data.
	CircularMarker = "[Circular]"
)

// maskRune is the character used to pad partially masked values.
const maskRune = '*'

// TransformFunc is a user-supplied redaction transform. It receives the
// matched value and returns its replacement verbatim; the engine performs
// no further processing on the result.
type TransformFunc func(value interface{}) interface{}

type strategyKind int

const (
	kindMask strategyKind = iota
	kindRemove
	kindHash
	kindMaskLast
	kindCustom
)

// Strategy describes how a matched field's value is transformed before a
// log record is emitted. Strategies are stateless and pure; the zero value
// behaves like Mask.
type Strategy struct {
	kind      strategyKind
	keep      int
	transform TransformFunc
}

// Mask returns the strategy that replaces the value with MaskPlaceholder.
func Mask() Strategy {
	return Strategy{kind: kindMask}
}

// Remove returns the strategy that drops the matched key from the output
// entirely. The key is absent, not present with a nil value.
func Remove() Strategy {
	return Strategy{kind: kindRemove}
}

// Hash returns the strategy that replaces strings and numbers with the
// lowercase hex SHA-256 digest of their string representation. Values of
// any other type are replaced with HashFailedPlaceholder; hashing is never
// attempted on composite values.
func Hash() Strategy {
	return Strategy{kind: kindHash}
}

// MaskLast returns the strategy that reveals only the trailing keep
// characters of a string value. Non-string values are replaced with
// MaskPlaceholder. Strings of length <= keep are returned unchanged since
// they already reveal no more than keep characters.
func MaskLast(keep int) Strategy {
	if keep < 0 {
		keep = 0
	}
	return Strategy{kind: kindMaskLast, keep: keep}
}

// Custom returns a strategy that applies fn to the matched value. A panic
// inside fn propagates to the caller of Redact; the engine does not wrap
// or suppress custom transform failures.
func Custom(fn TransformFunc) Strategy {
	return Strategy{kind: kindCustom, transform: fn}
}

// maskLastPrefix is the textual descriptor prefix for MaskLast strategies,
// e.g. "mask-last-4".
const maskLastPrefix = "mask-last-"

// ParseStrategy converts a textual strategy descriptor into a Strategy.
// Recognized descriptors are "mask", "remove", "hash" and "mask-last-N".
// A "mask-last-" descriptor with an unparsable or negative N degrades to
// plain masking rather than failing, so a malformed policy entry can never
// take down a log record. Unknown descriptor names return
// ErrUnknownStrategy.
func ParseStrategy(descriptor string) (Strategy, error) {
	switch descriptor {
	case "mask", "":
		return Mask(), nil
	case "remove":
		return Remove(), nil
	case "hash":
		return Hash(), nil
	}
	if strings.HasPrefix(descriptor, maskLastPrefix) {
		n, err := strconv.Atoi(descriptor[len(maskLastPrefix):])
		if err != nil || n < 0 {
			// Degrade to a full mask instead of rejecting the policy.
			return Mask(), nil
		}
		return MaskLast(n), nil
	}
	return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, descriptor)
}

// Name returns the textual descriptor for the strategy, e.g. "mask" or
// "mask-last-4". Custom transforms report "custom".
func (s Strategy) Name() string {
	switch s.kind {
	case kindRemove:
		return "remove"
	case kindHash:
		return "hash"
	case kindMaskLast:
		return maskLastPrefix + strconv.Itoa(s.keep)
	case kindCustom:
		return "custom"
	default:
		return "mask"
	}
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	return s.Name()
}

// Apply transforms value according to the strategy. The second return
// value reports whether the key should be kept in the output: it is false
// only for the Remove strategy, in which case the caller must not insert
// the key at all.
func (s Strategy) Apply(value interface{}) (interface{}, bool) {
	switch s.kind {
	case kindRemove:
		return nil, false
	case kindHash:
		return hashValue(value), true
	case kindMaskLast:
		return maskLast(value, s.keep), true
	case kindCustom:
		return s.transform(value), true
	default:
		return MaskPlaceholder, true
	}
}

// hashValue digests the string form of strings and numbers; any other
// type yields the failure placeholder.
func hashValue(value interface{}) string {
	s, ok := stringForm(value)
	if !ok {
		return HashFailedPlaceholder
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// stringForm returns the canonical string representation of a string or
// numeric value. The second return value is false for any other type.
func stringForm(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return "", false
	}
}

// maskLast keeps the trailing keep runes of a string and masks the rest.
func maskLast(value interface{}, keep int) string {
	s, ok := value.(string)
	if !ok {
		return MaskPlaceholder
	}
	runes := []rune(s)
	if len(runes) <= keep {
		return s
	}
	return strings.Repeat(string(maskRune), len(runes)-keep) + string(runes[len(runes)-keep:])
}
