package enum

import (
	"fmt"
	"reflect"
)

// registry maps an enum type to the string values registered with New.
var registry = map[reflect.Type]any{}

type values[T comparable] map[string]T

// New registers value under its own type and returns it, so enum constants
// can be declared as package-level vars.
func New[T comparable](value T) T {
	t := reflect.TypeOf(value)
	if _, ok := registry[t]; !ok {
		registry[t] = values[T]{}
	}

	registry[t].(values[T])[reflect.ValueOf(value).String()] = value
	return value
}

// ToEnum parses s into a registered value of T. Unregistered strings are
// rejected, which makes it the boundary check for client-provided enums.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	vals, ok := registry[reflect.TypeOf(zero)]
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	v, ok := vals.(values[T])[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return v, nil
}
