package collections

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-softwarelab/common/pkg/seq2"

	"github.com/hasbyte1/ds-transformer/arr"
)

// Callback types accepted by ArrayWrapper methods.
type (
	// Predicate reports whether value should be kept or counted.
	Predicate func(value any) bool

	// Mapper returns the replacement for value.
	Mapper func(value any) any

	// Reducer folds item into carry.
	Reducer func(carry, item any) any

	// Comparator returns a negative number when a sorts before b, a positive
	// number when it sorts after, and 0 otherwise.
	Comparator func(a, b any) int

	// Walker is called with every value and its key.
	Walker func(value any, key arr.Key)
)

// ArrayWrapper is a fluent, mutable wrapper around one [arr.Array].
//
// Every mutator changes the wrapped sequence in place and returns the same
// *ArrayWrapper, so calls can be chained:
//
//	w := collections.New(1, 2, 3).Push(4).Filter(isEven).Reverse()
//
// The wrapper owns its sequence: constructors copy their input and
// [ArrayWrapper.Get] returns a copy. It is not safe for concurrent use.
type ArrayWrapper struct {
	data *arr.Array
	rand *rand.Rand
}

// Option configures an ArrayWrapper.
type Option func(*ArrayWrapper)

// WithRand sets the random source used by Shuffle and the Random* methods.
// Without it the global math/rand source is used.
func WithRand(r *rand.Rand) Option {
	return func(w *ArrayWrapper) { w.rand = r }
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New wraps values as a list keyed 0 … len(values)-1.
func New(values ...any) *ArrayWrapper {
	return &ArrayWrapper{data: arr.List(values...).Clone()}
}

// Wrap wraps a deep copy of data.
func Wrap(data *arr.Array, opts ...Option) *ArrayWrapper {
	w := &ArrayWrapper{}
	if data == nil {
		w.data = arr.Make(0)
	} else {
		w.data = data.Clone()
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns a copy of the current sequence.
func (w *ArrayWrapper) Get() *arr.Array { return w.data.Clone() }

// Count returns the number of elements.
func (w *ArrayWrapper) Count() int { return w.data.Len() }

// IsEmpty reports whether the sequence has no elements.
func (w *ArrayWrapper) IsEmpty() bool { return w.data.Len() == 0 }

// IsNotEmpty reports whether the sequence has at least one element.
func (w *ArrayWrapper) IsNotEmpty() bool { return w.data.Len() > 0 }

// Keys returns the keys in order.
func (w *ArrayWrapper) Keys() []arr.Key { return w.data.Keys() }

// Values returns the values in order.
func (w *ArrayWrapper) Values() []any { return w.data.Values() }

// Clone returns an independent deep copy of the wrapper.
func (w *ArrayWrapper) Clone() *ArrayWrapper {
	return &ArrayWrapper{data: w.data.Clone(), rand: w.rand}
}

// String returns the JSON encoding of the sequence.
// It implements [fmt.Stringer].
func (w *ArrayWrapper) String() string { return w.data.String() }

// DataGet reads a nested value with a dot-notation path, returning def[0]
// (or nil) when the path does not exist.
//
//	collections.FromMap(map[string]any{"db": map[string]any{"host": "x"}}).DataGet("db.host") // "x"
func (w *ArrayWrapper) DataGet(path string, def ...any) any {
	return arr.Get(w.data, path, def...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Adding & removing
// ─────────────────────────────────────────────────────────────────────────────

// Push appends item under the next free integer key.
func (w *ArrayWrapper) Push(item any) *ArrayWrapper {
	w.data.Append(item)
	return w
}

// Merge appends the elements of other. Integer keys of the result are
// renumbered from 0; a string key already present is overwritten in place.
func (w *ArrayWrapper) Merge(other *arr.Array) *ArrayWrapper {
	w.data = arr.Merge(w.data, other)
	return w
}

// FlatMerge concatenates the arrays held by arrays one level deep and merges
// the result. An element that is not an array is merged as a one-element
// list.
//
//	collections.New(1, 2, 3).FlatMerge(arr.List(arr.List(5, 6), arr.List(10, 12)))
//	// → [1 2 3 5 6 10 12]
func (w *ArrayWrapper) FlatMerge(arrays *arr.Array) *ArrayWrapper {
	if arrays == nil {
		return w
	}
	return w.Merge(arr.Collapse(arrays))
}

// Pop removes the last element. It is a no-op on an empty sequence.
func (w *ArrayWrapper) Pop() *ArrayWrapper {
	w.data.Pop()
	return w
}

// Shift removes the first element and renumbers integer keys from 0.
// It is a no-op on an empty sequence.
func (w *ArrayWrapper) Shift() *ArrayWrapper {
	if rest, _, ok := arr.Shift(w.data); ok {
		w.data = rest
	}
	return w
}

// Unshift prepends values and renumbers integer keys from 0.
func (w *ArrayWrapper) Unshift(values ...any) *ArrayWrapper {
	w.data = arr.Prepend(w.data, values...)
	return w
}

// Pad grows the sequence to abs(length) elements, appending value when length
// is positive and prepending it when negative. Integer keys are renumbered.
// Nothing happens when abs(length) <= Count().
func (w *ArrayWrapper) Pad(length int, value any) *ArrayWrapper {
	w.data = arr.Pad(w.data, length, value)
	return w
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & splicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice keeps length elements starting at offset, preserving their keys.
//
// A negative offset counts from the end. Without length everything after
// offset is kept; a negative length stops that many elements before the end.
//
//	collections.New(1, 2, 3).Slice(1, 1).Get() // → {1: 2}
func (w *ArrayWrapper) Slice(offset int, length ...int) *ArrayWrapper {
	n := arr.ToEnd
	if len(length) > 0 {
		n = length[0]
	}
	w.data = arr.Slice(w.data, offset, n, true)
	return w
}

// Splice removes length elements at offset and inserts replacement in their
// place. Offset and length follow the rules of [ArrayWrapper.Slice]. Integer
// keys are renumbered, string keys kept.
func (w *ArrayWrapper) Splice(offset, length int, replacement ...any) *ArrayWrapper {
	w.data, _ = arr.Splice(w.data, offset, length, replacement...)
	return w
}

// ReplaceFromIndex replaces everything from offset to the end with
// replacement.
//
//	collections.New(1, 2, 3).ReplaceFromIndex(1, 5, 6) // → [1 5 6]
func (w *ArrayWrapper) ReplaceFromIndex(offset int, replacement ...any) *ArrayWrapper {
	return w.Splice(offset, w.data.Len()-offset, replacement...)
}

// ReplaceToIndex replaces the first index elements with replacement.
//
//	collections.New(1, 2, 3).ReplaceToIndex(2, 5, 6) // → [5 6 3]
func (w *ArrayWrapper) ReplaceToIndex(index int, replacement ...any) *ArrayWrapper {
	return w.Splice(0, index, replacement...)
}

// Chunk replaces the sequence with a list of arrays of at most size
// elements each. Chunks are keyed from 0 unless preserveKeys[0] is true.
//
// Returns an error wrapping [ErrInvalidArgument] when size < 1; the
// sequence is left unchanged.
func (w *ArrayWrapper) Chunk(size int, preserveKeys ...bool) (*ArrayWrapper, error) {
	preserve := len(preserveKeys) > 0 && preserveKeys[0]
	chunks, err := arr.Chunk(w.data, size, preserve)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	w.data = chunks
	return w, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the elements for which fn returns true. Keys are preserved,
// so the result may have gaps. A nil fn keeps the truthy values.
func (w *ArrayWrapper) Filter(fn Predicate) *ArrayWrapper {
	if fn == nil {
		fn = arr.Truthy
	}
	out := arr.Make(w.data.Len())
	for k, v := range seq2.FilterByValue(w.data.All(), fn) {
		out.Set(k, v)
	}
	w.data = out
	return w
}

// Map replaces every value with fn(value). Keys are preserved.
func (w *ArrayWrapper) Map(fn Mapper) *ArrayWrapper {
	w.data = arr.Map(w.data, fn)
	return w
}

// Flat recursively flattens nested arrays into a single list with fresh
// integer keys. Any nesting depth is supported.
func (w *ArrayWrapper) Flat() *ArrayWrapper {
	w.data = arr.Flatten(w.data)
	return w
}

// Dot flattens nested arrays into one level keyed by dot-joined paths.
//
//	collections.FromMap(map[string]any{"a": map[string]any{"b": 1}}).Dot().Get()
//	// → {"a.b": 1}
func (w *ArrayWrapper) Dot() *ArrayWrapper {
	w.data = arr.Dot(w.data)
	return w
}

// Unique drops every value whose string form was already seen. The first
// occurrence keeps its key.
func (w *ArrayWrapper) Unique() *ArrayWrapper {
	w.data = arr.Unique(w.data)
	return w
}

// Reverse reverses the order. Integer keys are renumbered, string keys kept.
func (w *ArrayWrapper) Reverse() *ArrayWrapper {
	w.data = arr.Reverse(w.data, false)
	return w
}

// Shuffle puts the values in a uniformly random order with fresh integer
// keys. It is not suitable for cryptographic use.
func (w *ArrayWrapper) Shuffle() *ArrayWrapper {
	w.data = arr.Shuffle(w.data, w.rand)
	return w
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
//
// Values are compared by their string form: 2, "2" and 2.0 are equal.
// ─────────────────────────────────────────────────────────────────────────────

// Diff drops the values found in any of others. Keys are preserved.
func (w *ArrayWrapper) Diff(others ...*arr.Array) *ArrayWrapper {
	w.data = arr.Diff(w.data, others...)
	return w
}

// DiffWithIndexCheck drops the elements whose key and value both match an
// entry of any of others.
//
//	collections.New(1, 2, 3).DiffWithIndexCheck(arr.List(3, 2)).Get() // → {0: 1, 2: 3}
func (w *ArrayWrapper) DiffWithIndexCheck(others ...*arr.Array) *ArrayWrapper {
	w.data = arr.DiffAssoc(w.data, others...)
	return w
}

// Intersect keeps the values found in every one of others. Keys are
// preserved.
func (w *ArrayWrapper) Intersect(others ...*arr.Array) *ArrayWrapper {
	w.data = arr.Intersect(w.data, others...)
	return w
}

// IntersectWithIndexCheck keeps the elements whose key and value both match
// an entry of every one of others.
func (w *ArrayWrapper) IntersectWithIndexCheck(others ...*arr.Array) *ArrayWrapper {
	w.data = arr.IntersectAssoc(w.data, others...)
	return w
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Walk calls fn(value, key) for every element.
func (w *ArrayWrapper) Walk(fn Walker) {
	for k, v := range w.data.All() {
		fn(v, k)
	}
}

// Reduce folds the values from left to right, starting with initial.
//
//	collections.New(1, 2, 3).Reduce(func(c, v any) any { return c.(int) * v.(int) }, 1) // 6
func (w *ArrayWrapper) Reduce(fn Reducer, initial any) any {
	return seq2.Reduce(w.data.All(), func(carry any, _ arr.Key, v any) any {
		return fn(carry, v)
	}, initial)
}

// Every reports whether fn holds for every value. It is true for an empty
// sequence.
func (w *ArrayWrapper) Every(fn Predicate) bool {
	return seq2.Every(w.data.All(), func(_ arr.Key, v any) bool { return fn(v) })
}

// Any reports whether fn holds for at least one value.
func (w *ArrayWrapper) Any(fn Predicate) bool {
	return seq2.Exists(w.data.All(), func(_ arr.Key, v any) bool { return fn(v) })
}

// Tap calls fn(w) for side effects and returns w for further chaining.
func (w *ArrayWrapper) Tap(fn func(*ArrayWrapper)) *ArrayWrapper {
	fn(w)
	return w
}

// When calls fn(w) if condition is true.
func (w *ArrayWrapper) When(condition bool, fn func(*ArrayWrapper)) *ArrayWrapper {
	if condition {
		fn(w)
	}
	return w
}

// Unless calls fn(w) if condition is false.
func (w *ArrayWrapper) Unless(condition bool, fn func(*ArrayWrapper)) *ArrayWrapper {
	return w.When(!condition, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & lookup
// ─────────────────────────────────────────────────────────────────────────────

// FindOne returns the first value for which fn returns true.
func (w *ArrayWrapper) FindOne(fn Predicate) (any, bool) {
	for _, v := range seq2.FilterByValue(w.data.All(), fn) {
		return v, true
	}
	return nil, false
}

// FindByIndex returns the value stored under the integer key index.
// Returns an error wrapping [ErrKeyNotFound] if there is none.
func (w *ArrayWrapper) FindByIndex(index int) (any, error) {
	return w.FindByKey(arr.IntKey(index))
}

// FindByKey returns the value stored under key, or an error wrapping
// [ErrKeyNotFound].
func (w *ArrayWrapper) FindByKey(key arr.Key) (any, error) {
	v, ok := w.data.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %#v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Contains reports whether a value identical to v (same type and value) is
// present.
func (w *ArrayWrapper) Contains(v any) bool { return arr.InArray(w.data, v) }

// IndexOf returns the key of the first value identical to v.
func (w *ArrayWrapper) IndexOf(v any) (arr.Key, bool) { return arr.Search(w.data, v) }

// IndexesOf returns the keys of every value identical to v.
//
// The sequence is filtered down to those values first, so after the call it
// only holds the matches. Use a [ArrayWrapper.Clone] to keep the original.
func (w *ArrayWrapper) IndexesOf(v any) []arr.Key {
	return w.Filter(func(item any) bool { return arr.Identical(item, v) }).Keys()
}

// HasDuplicate reports whether two values share a string form.
//
// It answers by deduplicating the sequence in place: afterwards the
// sequence holds the result of [ArrayWrapper.Unique]. Use
// [ArrayWrapper.HasDuplicateValues] to leave it untouched.
func (w *ArrayWrapper) HasDuplicate() bool {
	before := w.Count()
	return before > w.Unique().Count()
}

// HasDuplicateValues is the read-only form of [ArrayWrapper.HasDuplicate].
func (w *ArrayWrapper) HasDuplicateValues() bool {
	return arr.Unique(w.data).Len() < w.data.Len()
}

// ─────────────────────────────────────────────────────────────────────────────
// Random sampling
// ─────────────────────────────────────────────────────────────────────────────

// RandomValue returns one value chosen at random.
// Returns an error wrapping [ErrEmptyCollection] for an empty sequence.
func (w *ArrayWrapper) RandomValue() (any, error) {
	values, err := w.RandomValues(1)
	if err != nil {
		return nil, err
	}
	return values[0], nil
}

// RandomValues returns n distinct elements' values chosen at random, in
// sequence order.
//
// Returns an error wrapping [ErrEmptyCollection] for an empty sequence and
// [ErrInvalidArgument] when n is outside [1, Count()].
func (w *ArrayWrapper) RandomValues(n int) ([]any, error) {
	keys, err := w.RandomKeys(n)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i], _ = w.data.Get(k)
	}
	return values, nil
}

// Random returns one key chosen at random.
func (w *ArrayWrapper) Random() (arr.Key, error) {
	keys, err := w.RandomKeys(1)
	if err != nil {
		return arr.Key{}, err
	}
	return keys[0], nil
}

// RandomKeys returns n distinct keys chosen at random, in sequence order.
// Errors are the same as for [ArrayWrapper.RandomValues].
func (w *ArrayWrapper) RandomKeys(n int) ([]arr.Key, error) {
	keys, err := arr.Rand(w.data, n, w.rand)
	switch {
	case errors.Is(err, arr.ErrEmptyArray):
		return nil, fmt.Errorf("%w: %w", ErrEmptyCollection, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w (n=%d, count=%d)", ErrInvalidArgument, err, n, w.data.Len())
	}
	return keys, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins the string forms of the values with sep.
func (w *ArrayWrapper) Implode(sep string) string { return arr.Implode(w.data, sep) }

// Join is an alias for [ArrayWrapper.Implode].
func (w *ArrayWrapper) Join(sep string) string { return w.Implode(sep) }

// ReverseJoin reverses the sequence in place, then joins it with sep.
// Use [ArrayWrapper.JoinReversed] to leave the sequence untouched.
func (w *ArrayWrapper) ReverseJoin(sep string) string { return w.Reverse().Join(sep) }

// JoinReversed joins the values in reverse order without modifying the
// sequence.
func (w *ArrayWrapper) JoinReversed(sep string) string {
	return arr.Implode(arr.Reverse(w.data, false), sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON encodes the sequence as JSON. Lists become arrays, everything else
// an object whose members follow the sequence order.
func (w *ArrayWrapper) ToJSON() ([]byte, error) { return w.data.MarshalJSON() }

// ToYAML encodes the sequence as YAML.
func (w *ArrayWrapper) ToYAML() ([]byte, error) { return arr.ToYAML(w.data) }

// ToMsgpack encodes the sequence as MessagePack.
func (w *ArrayWrapper) ToMsgpack() ([]byte, error) { return arr.ToMsgpack(w.data) }
