package arr

import (
	"math"
	"math/rand"
	"slices"
	"strings"
)

// ToEnd is the length to pass to [Slice] to keep everything after offset.
const ToEnd = math.MaxInt

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Merge appends the arrays one after another (array_merge). Integer keys are
// renumbered from 0; a later string key overwrites the value of an earlier
// one in place.
//
//	Merge(List(1, 2), List(3)) // → [1 2 3]
func Merge(arrays ...*Array) *Array {
	total := 0
	for _, a := range arrays {
		if a != nil {
			total += a.Len()
		}
	}
	out := Make(total)
	for _, a := range arrays {
		if a == nil {
			continue
		}
		for _, e := range a.entries {
			out.putKeyed(e)
		}
	}
	return out
}

// Pad grows a to abs(length) elements by appending value (length > 0) or
// prepending it (length < 0), as array_pad does. Integer keys are
// renumbered. When abs(length) <= Len() a copy of a is returned unchanged.
func Pad(a *Array, length int, value any) *Array {
	size := length
	if size < 0 {
		size = -size
	}
	if size <= a.Len() {
		return a.copy()
	}
	value = normalize(value)
	out := Make(size)
	fill := func() {
		for i := a.Len(); i < size; i++ {
			out.push(cloneValue(value))
		}
	}
	if length < 0 {
		fill()
	}
	for _, e := range a.entries {
		out.putKeyed(e)
	}
	if length > 0 {
		fill()
	}
	return out
}

// Prepend inserts values at the front (array_unshift). Integer keys are
// renumbered from 0, string keys are kept.
func Prepend(a *Array, values ...any) *Array {
	out := Make(len(values) + a.Len())
	for _, v := range values {
		out.Append(v)
	}
	for _, e := range a.entries {
		out.putKeyed(e)
	}
	return out
}

// Shift removes the first element (array_shift) and returns the remaining
// array together with the removed value. Integer keys of the remaining
// array are renumbered from 0. ok is false when a is empty.
func Shift(a *Array) (rest *Array, first any, ok bool) {
	if a.Len() == 0 {
		return Make(0), nil, false
	}
	rest = Make(a.Len() - 1)
	for _, e := range a.entries[1:] {
		rest.putKeyed(e)
	}
	return rest, a.entries[0].Value, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns length elements starting at offset (array_slice).
//
// A negative offset counts from the end. A negative length stops that many
// elements before the end; [ToEnd] keeps everything after offset. With
// preserveKeys the original keys are kept, otherwise integer keys are
// renumbered. String keys are always kept.
//
//	Slice(List(1, 2, 3), 1, 1, true) // → {1: 2}
func Slice(a *Array, offset, length int, preserveKeys bool) *Array {
	n := a.Len()
	if offset > n {
		return Make(0)
	}
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	var end int
	switch {
	case length < 0:
		end = n + length
	case length > n-offset:
		end = n
	default:
		end = offset + length
	}
	if end <= offset {
		return Make(0)
	}
	out := Make(end - offset)
	for _, e := range a.entries[offset:end] {
		if preserveKeys {
			out.put(e.Key, e.Value)
		} else {
			out.putKeyed(e)
		}
	}
	return out
}

// Splice removes length elements at offset and inserts replacement in their
// place (array_splice). It returns the resulting array and the removed
// elements. Offset and length follow the rules of [Slice], except that an
// offset past the end appends. Integer keys of both results are renumbered.
//
//	out, removed := Splice(List(1, 2, 3), 1, 1, "x") // out → [1 x 3], removed → [2]
func Splice(a *Array, offset, length int, replacement ...any) (out, removed *Array) {
	n := a.Len()
	switch {
	case offset < 0:
		offset = max(n+offset, 0)
	case offset > n:
		offset = n
	}
	switch {
	case length < 0:
		length = max(n-offset+length, 0)
	case length > n-offset:
		length = n - offset
	}
	end := offset + length

	out = Make(n - length + len(replacement))
	removed = Make(length)
	insert := func() {
		for _, v := range replacement {
			out.Append(v)
		}
	}
	for i, e := range a.entries {
		if i == offset {
			insert()
		}
		if i >= offset && i < end {
			removed.putKeyed(e)
			continue
		}
		out.putKeyed(e)
	}
	if offset == n {
		insert()
	}
	return out, removed
}

// Chunk splits a into consecutive arrays of at most size elements
// (array_chunk) and returns them as a list. Chunks are re-keyed from 0
// unless preserveKeys is set.
//
// Returns [ErrInvalidChunkSize] when size < 1.
func Chunk(a *Array, size int, preserveKeys bool) (*Array, error) {
	if size < 1 {
		return nil, ErrInvalidChunkSize
	}
	out := Make(a.Len()/size + 1)
	var chunk *Array
	for _, e := range a.entries {
		if chunk == nil {
			chunk = Make(min(size, a.Len()))
		}
		if preserveKeys {
			chunk.put(e.Key, e.Value)
		} else {
			chunk.push(e.Value)
		}
		if chunk.Len() == size {
			out.push(chunk)
			chunk = nil
		}
	}
	if chunk != nil {
		out.push(chunk)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the elements for which fn returns true (array_filter). Keys
// are preserved, so the result may have gaps.
func Filter(a *Array, fn func(value any) bool) *Array {
	return FilterWithKey(a, func(_ Key, v any) bool { return fn(v) })
}

// FilterWithKey is [Filter] with the key passed to fn as well
// (array_filter with ARRAY_FILTER_USE_BOTH).
func FilterWithKey(a *Array, fn func(key Key, value any) bool) *Array {
	out := Make(a.Len())
	for _, e := range a.entries {
		if fn(e.Key, e.Value) {
			out.put(e.Key, e.Value)
		}
	}
	return out
}

// Map replaces every value with fn(value) (array_map with one array).
// Keys are preserved.
func Map(a *Array, fn func(value any) any) *Array {
	out := Make(a.Len())
	for _, e := range a.entries {
		out.put(e.Key, normalize(fn(e.Value)))
	}
	return out
}

// Reverse returns the elements in reverse order (array_reverse). String keys
// are always kept; integer keys are renumbered unless preserveKeys is set.
func Reverse(a *Array, preserveKeys bool) *Array {
	out := Make(a.Len())
	for i := a.Len() - 1; i >= 0; i-- {
		e := a.entries[i]
		if preserveKeys {
			out.put(e.Key, e.Value)
		} else {
			out.putKeyed(e)
		}
	}
	return out
}

// Flatten recursively flattens nested arrays into a single list with fresh
// keys. Non-array values keep their order.
//
// It walks an explicit stack rather than recursing, so nesting depth is
// bounded by memory only. An array that contains itself is not re-entered.
//
//	Flatten(List(1, List(2, List(3)), 4)) // → [1 2 3 4]
func Flatten(a *Array) *Array {
	type frame struct {
		arr *Array
		pos int
	}
	out := Make(a.Len())
	stack := []frame{{arr: a}}
	onPath := map[*Array]bool{a: true}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos >= len(top.arr.entries) {
			delete(onPath, top.arr)
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.arr.entries[top.pos].Value
		top.pos++
		if nested, ok := v.(*Array); ok {
			if nested == nil || onPath[nested] {
				continue
			}
			onPath[nested] = true
			stack = append(stack, frame{arr: nested})
			continue
		}
		out.push(v)
	}
	return out
}

// Collapse concatenates the arrays held by a one level deep, with
// [Merge] semantics. Elements that are not arrays are appended as they are.
//
//	Collapse(List(List(1, 2), List(3))) // → [1 2 3]
func Collapse(a *Array) *Array {
	out := Make(a.Len())
	for _, e := range a.entries {
		nested, ok := e.Value.(*Array)
		if !ok {
			out.push(e.Value)
			continue
		}
		if nested == nil {
			continue
		}
		for _, ne := range nested.entries {
			out.putKeyed(ne)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
//
// Values are compared after a string cast, as PHP does: 1, "1" and true are
// all the same value here.
// ─────────────────────────────────────────────────────────────────────────────

// Unique drops every value whose string cast was already seen (array_unique).
// The first occurrence keeps its key.
func Unique(a *Array) *Array {
	seen := make(map[string]struct{}, a.Len())
	return Filter(a, func(v any) bool {
		s := ToString(v)
		if _, dup := seen[s]; dup {
			return false
		}
		seen[s] = struct{}{}
		return true
	})
}

// Diff keeps the values of a that appear in none of others (array_diff).
// Keys are preserved.
func Diff(a *Array, others ...*Array) *Array {
	set := valueSet(others...)
	return Filter(a, func(v any) bool {
		_, found := set[ToString(v)]
		return !found
	})
}

// DiffAssoc keeps the entries of a whose key and value do not both match an
// entry of any of others (array_diff_assoc).
//
//	DiffAssoc(List(1, 2, 3), List(3, 2)) // → {0: 1, 2: 3}
func DiffAssoc(a *Array, others ...*Array) *Array {
	return FilterWithKey(a, func(k Key, v any) bool {
		for _, o := range others {
			if entryMatches(o, k, v) {
				return false
			}
		}
		return true
	})
}

// Intersect keeps the values of a that appear in every one of others
// (array_intersect). Keys are preserved.
func Intersect(a *Array, others ...*Array) *Array {
	sets := make([]map[string]struct{}, len(others))
	for i, o := range others {
		sets[i] = valueSet(o)
	}
	return Filter(a, func(v any) bool {
		s := ToString(v)
		for _, set := range sets {
			if _, found := set[s]; !found {
				return false
			}
		}
		return true
	})
}

// IntersectAssoc keeps the entries of a whose key and value both match an
// entry of every one of others (array_intersect_assoc).
func IntersectAssoc(a *Array, others ...*Array) *Array {
	return FilterWithKey(a, func(k Key, v any) bool {
		for _, o := range others {
			if !entryMatches(o, k, v) {
				return false
			}
		}
		return true
	})
}

func valueSet(arrays ...*Array) map[string]struct{} {
	set := make(map[string]struct{})
	for _, a := range arrays {
		if a == nil {
			continue
		}
		for _, e := range a.entries {
			set[ToString(e.Value)] = struct{}{}
		}
	}
	return set
}

func entryMatches(a *Array, k Key, v any) bool {
	if a == nil {
		return false
	}
	other, ok := a.Get(k)
	return ok && LooseEqual(v, other)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// Search returns the key of the first value identical to value
// (array_search in strict mode).
func Search(a *Array, value any) (Key, bool) {
	for _, e := range a.entries {
		if Identical(e.Value, value) {
			return e.Key, true
		}
	}
	return Key{}, false
}

// InArray reports whether a holds a value identical to value
// (in_array in strict mode).
func InArray(a *Array, value any) bool {
	_, ok := Search(a, value)
	return ok
}

// Implode joins the string casts of the values with sep.
func Implode(a *Array, sep string) string {
	parts := make([]string, a.Len())
	for i, e := range a.entries {
		parts[i] = ToString(e.Value)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns the values ordered by cmp as a fresh list (sort / usort).
// The sort is stable. A nil cmp uses [Compare].
func Sort(a *Array, cmp func(x, y any) int) *Array {
	if cmp == nil {
		cmp = Compare
	}
	values := a.Values()
	slices.SortStableFunc(values, cmp)
	return listOf(values)
}

// Shuffle returns the values in a uniformly random order as a fresh list.
// r may be nil to use the global source of math/rand.
func Shuffle(a *Array, r *rand.Rand) *Array {
	values := a.Values()
	swap := func(i, j int) { values[i], values[j] = values[j], values[i] }
	if r != nil {
		r.Shuffle(len(values), swap)
	} else {
		rand.Shuffle(len(values), swap)
	}
	return listOf(values)
}

// Rand picks n distinct keys at random (array_rand). The keys come back in
// the order they have in a. r may be nil to use the global source.
//
// Returns [ErrEmptyArray] for an empty array and [ErrInvalidRandomCount]
// when n is outside [1, Len()].
func Rand(a *Array, n int, r *rand.Rand) ([]Key, error) {
	total := a.Len()
	if total == 0 {
		return nil, ErrEmptyArray
	}
	if n < 1 || n > total {
		return nil, ErrInvalidRandomCount
	}
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}
	// Selection sampling: each remaining key is taken with probability
	// need/remaining, which keeps the chosen keys in array order.
	keys := make([]Key, 0, n)
	for i, e := range a.entries {
		need := n - len(keys)
		if need == 0 {
			break
		}
		if intn(total-i) < need {
			keys = append(keys, e.Key)
		}
	}
	return keys, nil
}

func listOf(values []any) *Array {
	out := Make(len(values))
	for _, v := range values {
		out.push(v)
	}
	return out
}

func cloneValue(v any) any {
	if nested, ok := v.(*Array); ok && nested != nil {
		return nested.Clone()
	}
	return v
}
