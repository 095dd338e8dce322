package collections

import (
	"fmt"

	"github.com/hasbyte1/ds-transformer/arr"
)

// This file contains the generic constructors and extractors. Go generics do
// not allow methods to introduce their own type parameters, so these are
// stand-alone functions:
//
//	w := collections.FromSlice([]string{"b", "a"}).SortAsc()
//	names, err := collections.ValuesOf[string](w) // ["a" "b"]

// FromSlice wraps a copy of items as a list.
func FromSlice[T any](items []T, opts ...Option) *ArrayWrapper {
	a := arr.Make(len(items))
	for _, item := range items {
		a.Append(item)
	}
	return Wrap(a, opts...)
}

// FromMap wraps m. Go maps are unordered, so the entries are sorted by key
// (integer-like keys first).
func FromMap[V any](m map[string]V, opts ...Option) *ArrayWrapper {
	return Wrap(arr.FromMap(m), opts...)
}

// ValuesOf returns the values of w as a []T.
// Returns an error wrapping [ErrInvalidArgument] if a value is not a T.
//
//	ints, err := collections.ValuesOf[int](collections.New(1, 2, 3))
func ValuesOf[T any](w Enumerable) ([]T, error) {
	values := w.Values()
	out := make([]T, len(values))
	for i, v := range values {
		t, ok := v.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("%w: value %d is %T, not %T", ErrInvalidArgument, i, v, zero)
		}
		out[i] = t
	}
	return out, nil
}
