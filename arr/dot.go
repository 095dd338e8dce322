package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for nested arrays
//
// These functions read and write values in nested arrays using dot-separated
// key paths, mirroring Laravel's Arr::dot, Arr::get, Arr::set, Arr::has and
// Arr::forget. Integer segments address list positions by key:
//
//	a := FromMap(map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	})
//
//	Get(a, "user.tags.1")  → "ops"
//	Set(a, "user.age", 30)
//	Has(a, "user.name")    → true
//	Forget(a, "user.tags")
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens nested arrays into a single level keyed by dot-joined paths.
// Empty nested arrays are kept as values.
//
//	Dot(FromMap(map[string]any{"a": map[string]any{"b": 1}}))
//	// → {"a.b": 1}
func Dot(a *Array) *Array {
	out := Make(a.Len())
	dotFlatten("", a, out, map[*Array]bool{a: true})
	return out
}

func dotFlatten(prefix string, a *Array, out *Array, onPath map[*Array]bool) {
	for _, e := range a.entries {
		key := e.Key.String()
		if prefix != "" {
			key = prefix + "." + key
		}
		nested, ok := e.Value.(*Array)
		if ok && nested != nil && nested.Len() > 0 && !onPath[nested] {
			onPath[nested] = true
			dotFlatten(key, nested, out, onPath)
			delete(onPath, nested)
			continue
		}
		out.put(StringKey(key), e.Value)
	}
}

// Undot expands a flat dot-notation array into nested arrays.
//
//	Undot(FromMap(map[string]any{"a.b": 1, "a.c": 2}))
//	// → {"a": {"b": 1, "c": 2}}
func Undot(a *Array) *Array {
	out := Make(a.Len())
	for _, e := range a.entries {
		Set(out, e.Key.String(), e.Value)
	}
	return out
}

// Get retrieves a value using a dot-notation path. A key that literally
// contains dots is found before the path is split.
// Returns def[0] (or nil) when the path does not exist.
//
//	Get(a, "user.name")            // "Alice"
//	Get(a, "user.missing", "none") // "none"
func Get(a *Array, path string, def ...any) any {
	if v, ok := lookup(a, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation path exists in a.
func Has(a *Array, path string) bool {
	_, ok := lookup(a, path)
	return ok
}

func lookup(a *Array, path string) (any, bool) {
	if a == nil {
		return nil, false
	}
	if v, ok := a.Get(StringKey(path)); ok {
		return v, true
	}
	current := a
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		val, ok := current.Get(StringKey(seg))
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(*Array)
		if !ok || nested == nil {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Set writes value at the dot-notation path, creating (or replacing
// non-array values with) intermediate arrays as needed.
//
//	Set(a, "user.address.postcode", "EC1")
func Set(a *Array, path string, value any) {
	seg, rest, nestedPath := strings.Cut(path, ".")
	if !nestedPath {
		a.Set(StringKey(path), value)
		return
	}
	k := StringKey(seg)
	v, _ := a.Get(k)
	nested, ok := v.(*Array)
	if !ok || nested == nil {
		nested = Make(0)
		a.put(k, nested)
	}
	Set(nested, rest, value)
}

// Forget removes the dot-notation path from a. Intermediate arrays are not
// cleaned up.
func Forget(a *Array, path string) {
	if a.Delete(StringKey(path)) {
		return
	}
	seg, rest, nestedPath := strings.Cut(path, ".")
	if !nestedPath {
		return
	}
	v, _ := a.Get(StringKey(seg))
	if nested, ok := v.(*Array); ok && nested != nil {
		Forget(nested, rest)
	}
}
