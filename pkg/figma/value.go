package figma

import (
	"bytes"
	"encoding/json"
)

// valueState tracks whether a style attribute is absent, present, or carries
// the design tool's "mixed" sentinel.
type valueState uint8

const (
	stateAbsent valueState = iota
	statePresent
	stateMixed
)

// Value is a tri-state style attribute: absent, present with a uniform value,
// or "mixed" (not uniform across sub-elements). The zero Value is absent.
type Value[T any] struct {
	state valueState
	v     T
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{state: statePresent, v: v}
}

// Mixed returns a Value carrying the mixed sentinel.
func Mixed[T any]() Value[T] {
	return Value[T]{state: stateMixed}
}

// Get returns the held value and true when the Value is present.
// For absent or mixed values it returns the zero value and false, which is
// what every renderer wants: mixed degrades to the same fallback as absent.
func (v Value[T]) Get() (T, bool) {
	if v.state == statePresent {
		return v.v, true
	}
	var zero T
	return zero, false
}

// IsMixed reports whether the attribute carries the mixed sentinel.
func (v Value[T]) IsMixed() bool { return v.state == stateMixed }

// IsAbsent reports whether the attribute was not supplied at all.
func (v Value[T]) IsAbsent() bool { return v.state == stateAbsent }

// mixedSentinel is how the plugin export spells figma.mixed in JSON.
var mixedSentinel = []byte(`"mixed"`)

// UnmarshalJSON decodes either the mixed sentinel or a plain value.
// A field that is missing from the JSON object is never passed here, so the
// zero (absent) state survives untouched.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, mixedSentinel) {
		*v = Mixed[T]()
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*v = Value[T]{}
		return nil
	}
	var inner T
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	*v = Of(inner)
	return nil
}

// MarshalJSON encodes present values as-is, mixed as the sentinel string,
// and absent as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	switch v.state {
	case statePresent:
		return json.Marshal(v.v)
	case stateMixed:
		return mixedSentinel, nil
	default:
		return []byte("null"), nil
	}
}
