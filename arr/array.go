package arr

import (
	"iter"
	"reflect"
	"slices"
)

// Entry is a single key/value pair of an [Array].
type Entry struct {
	Key   Key
	Value any
}

// Array is an ordered hash map from [Key] to arbitrary values, modelled on
// PHP arrays.
//
// Iteration order is insertion order. Keys need not be contiguous: a list
// such as [1 2 3] keeps the keys {0, 2} after the middle element is removed.
// Appending uses the next free integer key, which is one past the largest
// integer key ever inserted.
//
// Nested arrays are stored as *Array. Go slices and maps passed in as values
// are converted to *Array on insertion (maps in sorted key order), so
// helpers such as [Flatten] and [Compare] see a single representation.
//
// The zero value is an empty array ready to use. An Array is not safe for
// concurrent mutation.
type Array struct {
	entries []Entry
	index   map[Key]int
	next    int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Make returns an empty array with room for capacity entries.
func Make(capacity int) *Array {
	if capacity < 0 {
		capacity = 0
	}
	return &Array{
		entries: make([]Entry, 0, capacity),
		index:   make(map[Key]int, capacity),
	}
}

// List returns an array holding values under the keys 0 … len(values)-1.
func List(values ...any) *Array {
	a := Make(len(values))
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// FromEntries builds an array from entries in order. A repeated key
// overwrites the earlier value but keeps its position.
func FromEntries(entries ...Entry) *Array {
	a := Make(len(entries))
	for _, e := range entries {
		a.Set(e.Key, e.Value)
	}
	return a
}

// FromMap builds an array from m. Go maps are unordered, so the entries are
// sorted by key: integer keys first, then string keys.
func FromMap[V any](m map[string]V) *Array {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: StringKey(k), Value: v})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return compareKeys(a.Key, b.Key) })
	return FromEntries(entries...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (a *Array) Len() int { return len(a.entries) }

// IsList reports whether the keys are exactly 0 … Len()-1 in order.
func (a *Array) IsList() bool {
	for i, e := range a.entries {
		if e.Key.isStr || e.Key.n != i {
			return false
		}
	}
	return true
}

// NextIndex returns the integer key the next [Array.Append] will use.
func (a *Array) NextIndex() int { return a.next }

// Has reports whether k is present.
func (a *Array) Has(k Key) bool {
	_, ok := a.index[k]
	return ok
}

// Get returns the value stored under k.
func (a *Array) Get(k Key) (any, bool) {
	i, ok := a.index[k]
	if !ok {
		return nil, false
	}
	return a.entries[i].Value, true
}

// At returns the entry at position i (0-based, in iteration order).
// It panics if i is out of range, like slice indexing.
func (a *Array) At(i int) Entry { return a.entries[i] }

// Keys returns the keys in order.
func (a *Array) Keys() []Key {
	out := make([]Key, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Key
	}
	return out
}

// Values returns the values in order.
func (a *Array) Values() []any {
	out := make([]any, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Value
	}
	return out
}

// Entries returns a copy of the entries in order.
func (a *Array) Entries() []Entry { return slices.Clone(a.entries) }

// All iterates over the entries in order.
func (a *Array) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for _, e := range a.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores v under k. An existing key keeps its position.
func (a *Array) Set(k Key, v any) { a.put(k, normalize(v)) }

// Append stores v under the next free integer key and returns that key.
func (a *Array) Append(v any) Key { return a.push(normalize(v)) }

// Delete removes k and reports whether it was present. The next free
// integer key is left untouched, as with PHP's unset.
func (a *Array) Delete(k Key) bool {
	i, ok := a.index[k]
	if !ok {
		return false
	}
	a.removeAt(i)
	return true
}

// Pop removes and returns the last entry. Removing the highest integer key
// releases it for the next [Array.Append].
func (a *Array) Pop() (Entry, bool) {
	if len(a.entries) == 0 {
		return Entry{}, false
	}
	last := a.entries[len(a.entries)-1]
	a.removeAt(len(a.entries) - 1)
	if !last.Key.isStr && last.Key.n == a.next-1 {
		a.next--
	}
	return last, true
}

// Clone returns a deep copy: nested arrays are copied too, other values are
// copied by assignment.
func (a *Array) Clone() *Array {
	return a.cloneWith(make(map[*Array]*Array))
}

func (a *Array) cloneWith(seen map[*Array]*Array) *Array {
	if c, ok := seen[a]; ok {
		return c
	}
	out := Make(len(a.entries))
	out.next = a.next
	seen[a] = out
	for _, e := range a.entries {
		v := e.Value
		if nested, ok := v.(*Array); ok && nested != nil {
			v = nested.cloneWith(seen)
		}
		out.index[e.Key] = len(out.entries)
		out.entries = append(out.entries, Entry{Key: e.Key, Value: v})
	}
	return out
}

// copy is a shallow copy sharing nested arrays.
func (a *Array) copy() *Array {
	out := Make(len(a.entries))
	out.next = a.next
	for _, e := range a.entries {
		out.put(e.Key, e.Value)
	}
	return out
}

// Native converts the array into plain Go values: lists become []any and
// other arrays map[string]any, recursively.
func (a *Array) Native() any {
	return a.native(make(map[*Array]bool))
}

func (a *Array) native(onPath map[*Array]bool) any {
	onPath[a] = true
	defer delete(onPath, a)
	conv := func(v any) any {
		if nested, ok := v.(*Array); ok && nested != nil {
			if onPath[nested] {
				return nil
			}
			return nested.native(onPath)
		}
		return v
	}
	if a.IsList() {
		out := make([]any, len(a.entries))
		for i, e := range a.entries {
			out[i] = conv(e.Value)
		}
		return out
	}
	out := make(map[string]any, len(a.entries))
	for _, e := range a.entries {
		out[e.Key.String()] = conv(e.Value)
	}
	return out
}

// Equal reports whether a and b hold identical values under the same keys in
// the same order. See [Identical].
func (a *Array) Equal(b *Array) bool { return identicalArrays(a, b) }

// String returns the JSON encoding of the array.
func (a *Array) String() string {
	b, err := a.MarshalJSON()
	if err != nil {
		return "Array"
	}
	return string(b)
}

func (a *Array) put(k Key, v any) {
	if a.index == nil {
		a.index = make(map[Key]int)
	}
	if i, ok := a.index[k]; ok {
		a.entries[i].Value = v
		return
	}
	a.index[k] = len(a.entries)
	a.entries = append(a.entries, Entry{Key: k, Value: v})
	if !k.isStr && k.n >= a.next {
		a.next = k.n + 1
	}
}

func (a *Array) push(v any) Key {
	k := IntKey(a.next)
	a.put(k, v)
	return k
}

// putKeyed keeps string keys and renumbers integer keys, the rule shared by
// every PHP function that "reindexes numeric keys".
func (a *Array) putKeyed(e Entry) {
	if e.Key.isStr {
		a.put(e.Key, e.Value)
		return
	}
	a.push(e.Value)
}

func (a *Array) removeAt(i int) {
	delete(a.index, a.entries[i].Key)
	a.entries = slices.Delete(a.entries, i, i+1)
	for j := i; j < len(a.entries); j++ {
		a.index[a.entries[j].Key] = j
	}
}

// normalize converts Go slices, arrays and maps into *Array. []byte is kept
// as a scalar.
func normalize(v any) any {
	switch t := v.(type) {
	case nil, *Array, string, bool, int, int64, float64, []byte:
		return v
	case []any:
		return List(t...)
	case map[string]any:
		return FromMap(t)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return Make(0)
		}
		fallthrough
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := Make(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Append(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		entries := make([]Entry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k, err := KeyOf(it.Key().Interface())
			if err != nil {
				return v
			}
			entries = append(entries, Entry{Key: k, Value: it.Value().Interface()})
		}
		slices.SortFunc(entries, func(a, b Entry) int { return compareKeys(a.Key, b.Key) })
		return FromEntries(entries...)
	}
	return v
}
