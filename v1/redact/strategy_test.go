package redact

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestMaskLast(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		keep  int
		want  interface{}
	}{
		{"reveals trailing characters", "1234567890", 4, "******7890"},
		{"shorter than keep is unchanged", "123", 4, "123"},
		{"equal to keep is unchanged", "1234", 4, "1234"},
		{"empty string is unchanged", "", 4, ""},
		{"non-string gets fixed placeholder", 12345, 4, MaskPlaceholder},
		{"keep zero masks everything", "abcd", 0, "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := MaskLast(tt.keep).Apply(tt.value)
			if !keep {
				t.Fatalf("mask-last must keep the key")
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMaskReplacesAnyValue(t *testing.T) {
	for _, value := range []interface{}{"secret", 42, 3.14, true, []string{"a"}} {
		got, keep := Mask().Apply(value)
		if !keep {
			t.Fatalf("mask must keep the key")
		}
		if got != MaskPlaceholder {
			t.Fatalf("expected %q, got %v", MaskPlaceholder, got)
		}
	}
}

func TestZeroValueStrategyBehavesLikeMask(t *testing.T) {
	var s Strategy
	got, keep := s.Apply("secret")
	if !keep || got != MaskPlaceholder {
		t.Fatalf("zero-value strategy should mask, got %v keep=%v", got, keep)
	}
	if s.Name() != "mask" {
		t.Fatalf("expected name mask, got %q", s.Name())
	}
}

func TestRemoveOmitsKey(t *testing.T) {
	_, keep := Remove().Apply("anything")
	if keep {
		t.Fatalf("remove must report the key as omitted")
	}
}

func TestHashStrings(t *testing.T) {
	got, keep := Hash().Apply("secret")
	if !keep {
		t.Fatalf("hash must keep the key")
	}

	sum := sha256.Sum256([]byte("secret"))
	want := hex.EncodeToString(sum[:])
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestHashNumbersUseStringRepresentation(t *testing.T) {
	fromInt, _ := Hash().Apply(42)
	fromString, _ := Hash().Apply("42")
	if fromInt != fromString {
		t.Fatalf("hash of 42 should equal hash of %q: %v != %v", "42", fromInt, fromString)
	}

	fromFloat, _ := Hash().Apply(2.5)
	fromFloatString, _ := Hash().Apply("2.5")
	if fromFloat != fromFloatString {
		t.Fatalf("hash of 2.5 should equal hash of %q: %v != %v", "2.5", fromFloat, fromFloatString)
	}
}

func TestHashUnsupportedTypes(t *testing.T) {
	for _, value := range []interface{}{true, []string{"a"}, map[string]string{"a": "b"}, nil} {
		got, keep := Hash().Apply(value)
		if !keep {
			t.Fatalf("hash must keep the key")
		}
		if got != HashFailedPlaceholder {
			t.Fatalf("expected %q for %T, got %v", HashFailedPlaceholder, value, got)
		}
	}
}

func TestCustomTransformAppliedVerbatim(t *testing.T) {
	s := Custom(func(value interface{}) interface{} {
		return "seen:" + value.(string)
	})
	got, keep := s.Apply("x")
	if !keep {
		t.Fatalf("custom must keep the key")
	}
	if got != "seen:x" {
		t.Fatalf("expected custom result, got %v", got)
	}
	if s.Name() != "custom" {
		t.Fatalf("expected name custom, got %q", s.Name())
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		descriptor string
		wantName   string
	}{
		{"mask", "mask"},
		{"", "mask"},
		{"remove", "remove"},
		{"hash", "hash"},
		{"mask-last-4", "mask-last-4"},
		{"mask-last-0", "mask-last-0"},
		// Malformed N degrades to plain masking instead of failing.
		{"mask-last-x", "mask"},
		{"mask-last--1", "mask"},
	}

	for _, tt := range tests {
		s, err := ParseStrategy(tt.descriptor)
		if err != nil {
			t.Fatalf("ParseStrategy(%q) returned error: %v", tt.descriptor, err)
		}
		if s.Name() != tt.wantName {
			t.Fatalf("ParseStrategy(%q) = %q, want %q", tt.descriptor, s.Name(), tt.wantName)
		}
	}
}

func TestParseStrategyUnknownDescriptor(t *testing.T) {
	_, err := ParseStrategy("encrypt")
	if err == nil {
		t.Fatalf("expected error for unknown descriptor")
	}
	if !IsUnknownStrategyError(err) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}
