package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactScenario(t *testing.T) {
	p := MustNewPolicy(
		[]string{"password", "api_key"},
		map[string]Strategy{"api_key": Mask()},
		Mask(),
	)

	out := p.Redact(map[string]interface{}{
		"password": "p1",
		"api_key":  "k1",
		"note":     "ok",
	})

	require.Equal(t, map[string]interface{}{
		"password": "*****",
		"api_key":  "*****",
		"note":     "ok",
	}, out)
}

func TestRedactPreservesOriginalKeyCasing(t *testing.T) {
	p := MustNewPolicy([]string{"auth"}, nil, Mask())

	out := p.Redact(map[string]interface{}{"Auth": "x"})

	require.Equal(t, map[string]interface{}{"Auth": "*****"}, out)
}

func TestRedactRemoveOmitsKeyEntirely(t *testing.T) {
	p := MustNewPolicy([]string{"ssn"}, map[string]Strategy{"ssn": Remove()}, Mask())

	out := p.Redact(map[string]interface{}{"ssn": "123-45-6789", "name": "jane"})

	m, ok := out.(map[string]interface{})
	require.True(t, ok)
	_, present := m["ssn"]
	assert.False(t, present, "removed key must be absent, not nil")
	assert.Equal(t, "jane", m["name"])
}

func TestRedactPrimitivesPassThrough(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	assert.Equal(t, "password", p.Redact("password"), "bare strings are never matched by content")
	assert.Equal(t, 42, p.Redact(42))
	assert.Equal(t, true, p.Redact(true))
	assert.Nil(t, p.Redact(nil))
}

func TestRedactMatchedCompositeIsNotRecursedInto(t *testing.T) {
	p := MustNewPolicy([]string{"credentials"}, nil, Mask())

	out := p.Redact(map[string]interface{}{
		"credentials": map[string]interface{}{"user": "u", "password": "p"},
	})

	// The strategy fully replaces the composite value.
	require.Equal(t, map[string]interface{}{"credentials": "*****"}, out)
}

func TestRedactRecursesUnmatchedComposites(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	out := p.Redact(map[string]interface{}{
		"request": map[string]interface{}{
			"password": "p1",
			"items":    []interface{}{map[string]interface{}{"password": "p2", "id": 7}},
		},
	})

	require.Equal(t, map[string]interface{}{
		"request": map[string]interface{}{
			"password": "*****",
			"items":    []interface{}{map[string]interface{}{"password": "*****", "id": 7}},
		},
	}, out)
}

func TestRedactDoesNotMutateInput(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	in := map[string]interface{}{
		"password": "p1",
		"nested":   map[string]interface{}{"password": "p2"},
	}
	_ = p.Redact(in)

	assert.Equal(t, "p1", in["password"])
	assert.Equal(t, "p2", in["nested"].(map[string]interface{})["password"])
}

func TestRedactSelfReferentialMapTerminates(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	in := map[string]interface{}{"password": "p1"}
	in["self"] = in

	out := p.Redact(in)

	m, ok := out.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "*****", m["password"])
	assert.Equal(t, CircularMarker, m["self"], "cycle must be truncated with the marker, not dropped")
}

func TestRedactCycleOfLengthTwoTerminates(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	a := map[string]interface{}{"name": "a"}
	b := map[string]interface{}{"name": "b", "peer": a}
	a["peer"] = b

	out := p.Redact(a)

	m, ok := out.(map[string]interface{})
	require.True(t, ok)
	peer, ok := m["peer"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "b", peer["name"])
	assert.Equal(t, CircularMarker, peer["peer"])
}

func TestRedactSliceCycleTerminates(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	s := make([]interface{}, 2)
	s[0] = "ok"
	s[1] = s

	out := p.Redact(s)

	seq, ok := out.([]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", seq[0])
	assert.Equal(t, CircularMarker, seq[1])
}

func TestRedactAliasedSubSlicesAreNotCircular(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	// full and head share a backing array and a start address; neither is
	// part of a cycle, so both must survive intact.
	s := []interface{}{"a", "b", "c"}
	out := p.Redact(map[string]interface{}{
		"full": s,
		"head": s[:2],
	})

	require.Equal(t, map[string]interface{}{
		"full": []interface{}{"a", "b", "c"},
		"head": []interface{}{"a", "b"},
	}, out)
}

func TestRedactRepeatedSliceValueStillTruncates(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	// The same slice view reached through itself is a real cycle even
	// though the aliased view from the parent is not.
	s := make([]interface{}, 1)
	s[0] = s[:1]

	out := p.Redact(s)

	seq, ok := out.([]interface{})
	require.True(t, ok)
	assert.Equal(t, CircularMarker, seq[0])
}

func TestRedactStructFields(t *testing.T) {
	type login struct {
		Username string
		Password string
		attempts int // unexported, skipped
	}

	p := MustNewPolicy([]string{"password"}, nil, Mask())

	out := p.Redact(login{Username: "jane", Password: "p1", attempts: 3})

	require.Equal(t, map[string]interface{}{
		"Username": "jane",
		"Password": "*****",
	}, out)
}

func TestRedactPointerIsDereferenced(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	in := &map[string]interface{}{"password": "p1"}
	out := p.Redact(in)

	require.Equal(t, map[string]interface{}{"password": "*****"}, out)
}

func TestRedactNonStringMapKeys(t *testing.T) {
	p := MustNewPolicy([]string{"password"}, nil, Mask())

	out := p.Redact(map[int]string{1: "a", 2: "b"})

	require.Equal(t, map[string]interface{}{"1": "a", "2": "b"}, out)
}

func TestRedactIsIdempotentOnAcyclicInput(t *testing.T) {
	p := MustNewPolicy(
		[]string{"password", "api_key", "token"},
		map[string]Strategy{"api_key": MaskLast(4), "token": Hash()},
		Mask(),
	)

	in := map[string]interface{}{
		"password": "p1",
		"api_key":  "sk-1234567890",
		"nested":   map[string]interface{}{"password": "p2", "note": "ok"},
	}

	once := p.Redact(in)
	twice := p.Redact(once)

	// A masked value stays the fixed placeholder and a mask-last value
	// already reveals only its trailing characters, so re-redacting the
	// output under the same policy yields the same output.
	require.Equal(t, once, twice)
	assert.Equal(t, MaskPlaceholder, twice.(map[string]interface{})["password"])
	assert.Equal(t, "*********7890", twice.(map[string]interface{})["api_key"])
}

func TestRedactMaskLastOnNestedKey(t *testing.T) {
	p := MustNewPolicy(
		[]string{"card"},
		map[string]Strategy{"card": MaskLast(4)},
		Mask(),
	)

	out := p.Redact(map[string]interface{}{"card": "4111111111111111"})

	require.Equal(t, map[string]interface{}{"card": "************1111"}, out)
}
