package redact

import (
	"fmt"
	"reflect"
)

// nodeID identifies a composite node by address and type. The type is part
// of the identity because distinct composites can start at the same
// address, e.g. a struct and its first field. For slices the length is
// part of the identity too: distinct sub-slices share a backing array and
// a start address, and only a revisit of the same view is a cycle.
type nodeID struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// Redact produces a redacted copy of value. Primitives pass through
// untouched; keyed composites (maps with any key type, structs via their
// exported fields) are rebuilt as map[string]interface{} with the policy
// applied per key; sequences (slices, arrays) are rebuilt as
// []interface{} with each element redacted independently.
//
// The input is never mutated. A fresh visited set is created per call, so
// the walk terminates even on cyclic input: a composite reached a second
// time is replaced by CircularMarker instead of being recursed into.
//
// A matched key's value is fully replaced by its strategy and never
// recursed into, even when it is itself a composite; a matched key is
// assumed fully sensitive. Matching is case-insensitive but the output
// keeps the original key spelling.
func (p *Policy) Redact(value interface{}) interface{} {
	return p.redactValue(reflect.ValueOf(value), make(map[nodeID]struct{}))
}

func (p *Policy) redactValue(rv reflect.Value, visited map[nodeID]struct{}) interface{} {
	switch rv.Kind() {
	case reflect.Invalid:
		return nil

	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return p.redactValue(rv.Elem(), visited)

	case reflect.Pointer:
		if rv.IsNil() {
			return rv.Interface()
		}
		id := nodeID{ptr: rv.Pointer(), typ: rv.Type()}
		if _, seen := visited[id]; seen {
			return CircularMarker
		}
		visited[id] = struct{}{}
		return p.redactValue(rv.Elem(), visited)

	case reflect.Map:
		if rv.IsNil() {
			return rv.Interface()
		}
		id := nodeID{ptr: rv.Pointer(), typ: rv.Type()}
		if _, seen := visited[id]; seen {
			return CircularMarker
		}
		visited[id] = struct{}{}
		return p.redactMap(rv, visited)

	case reflect.Slice:
		if rv.IsNil() {
			return rv.Interface()
		}
		// Zero-length slices share backing storage; they also cannot
		// participate in a cycle, so they are not tracked.
		if rv.Len() > 0 {
			id := nodeID{ptr: rv.Pointer(), typ: rv.Type(), len: rv.Len()}
			if _, seen := visited[id]; seen {
				return CircularMarker
			}
			visited[id] = struct{}{}
		}
		return p.redactSequence(rv, visited)

	case reflect.Array:
		// Arrays are values: every occurrence is a distinct copy, so a
		// cycle can only close through an interior pointer, map or
		// slice, which the walk catches on its own.
		return p.redactSequence(rv, visited)

	case reflect.Struct:
		return p.redactStruct(rv, visited)

	default:
		// Primitives (including nil-like values) are never redacted
		// directly; redaction only triggers via a key name at the
		// containing level.
		return rv.Interface()
	}
}

// redactMap rebuilds a map as map[string]interface{}. Non-string keys are
// rendered with fmt.Sprint before matching so that policies expressed as
// field names apply uniformly.
func (p *Policy) redactMap(rv reflect.Value, visited map[nodeID]struct{}) map[string]interface{} {
	result := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := keyString(iter.Key())
		p.redactEntry(result, key, iter.Value(), visited)
	}
	return result
}

// redactStruct rebuilds a struct's exported fields as a keyed mapping.
func (p *Policy) redactStruct(rv reflect.Value, visited map[nodeID]struct{}) map[string]interface{} {
	rt := rv.Type()
	result := make(map[string]interface{}, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		p.redactEntry(result, field.Name, rv.Field(i), visited)
	}
	return result
}

// redactEntry applies the per-key contract shared by maps and structs:
// matched keys get their strategy result stored under the original
// spelling (or are omitted for Remove), unmatched values recurse with the
// same visited set.
func (p *Policy) redactEntry(result map[string]interface{}, key string, rv reflect.Value, visited map[nodeID]struct{}) {
	if strategy, matched := p.Match(key); matched {
		replacement, keep := strategy.Apply(rv.Interface())
		p.observeRedaction(key, strategy)
		if keep {
			result[key] = replacement
		}
		return
	}
	result[key] = p.redactValue(rv, visited)
}

// redactSequence rebuilds a slice or array, redacting each element with
// the shared visited set so a cycle through a sibling is still caught.
func (p *Policy) redactSequence(rv reflect.Value, visited map[nodeID]struct{}) []interface{} {
	result := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		result[i] = p.redactValue(rv.Index(i), visited)
	}
	return result
}

func keyString(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	return fmt.Sprint(key.Interface())
}
