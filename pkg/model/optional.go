package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Optional pairs a value with a flag recording whether it was explicitly set.
// It lets attributes tell "set to false/0" apart from "not mentioned".
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether a value was explicitly provided.
func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// Value returns the stored value, the zero value when absent.
func (o Optional[T]) Value() T { return o.value }

// Or returns the stored value or fallback when absent.
func (o Optional[T]) Or(fallback T) T {
	if !o.set {
		return fallback
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// MarshalJSON encodes the value, or null when absent.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON marks the value as set whenever the member is present and
// not null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = v
	o.set = true
	return nil
}

// UnmarshalYAML marks the value as set whenever the key is present and not
// null.
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	o.value = v
	o.set = true
	return nil
}
