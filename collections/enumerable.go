package collections

import "github.com/hasbyte1/ds-transformer/arr"

// Enumerable is the read surface of [ArrayWrapper].
//
// Accept Enumerable in your own functions so that callers can pass an
// alternative implementation without depending on the concrete wrapper.
// None of these methods modify the sequence.
type Enumerable interface {
	// Get returns a copy of the sequence.
	Get() *arr.Array

	// Count returns the number of elements.
	Count() int

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// Keys returns the keys in order.
	Keys() []arr.Key

	// Values returns the values in order.
	Values() []any

	// Walk calls fn(value, key) for every element.
	Walk(fn Walker)

	// Every reports whether fn holds for every value.
	Every(fn Predicate) bool

	// Any reports whether fn holds for at least one value.
	Any(fn Predicate) bool

	// FindOne returns the first value for which fn returns true.
	FindOne(fn Predicate) (any, bool)

	// Contains reports whether a value identical to v is present.
	Contains(v any) bool
}

var _ Enumerable = (*ArrayWrapper)(nil)
