// Package collections provides ArrayWrapper, a fluent, mutable wrapper around
// a PHP-style ordered array ([arr.Array]).
//
// # Overview
//
// Mutators change the wrapped sequence in place and return the wrapper, so
// calls chain:
//
//	out := collections.New(3, 1, 2, 2).
//	    Unique().
//	    SortDesc().
//	    Map(func(v any) any { return v.(int) * 10 }).
//	    Join(", ") // → "30, 20, 10"
//
// Terminal queries ([ArrayWrapper.Count], [ArrayWrapper.Reduce],
// [ArrayWrapper.FindOne], …) return a value instead.
//
// # Keys
//
// The sequence is an ordered hash, not a slice. Filter, Map, Slice and the
// Diff/Intersect family keep the keys of the surviving elements; Merge,
// Shift, Unshift, Splice, Pad, Reverse, Sort and Shuffle renumber integer
// keys from 0:
//
//	collections.New(1, 2, 3).Filter(func(v any) bool { return v.(int) > 2 }).Get()
//	// → {2: 3}
//
// # Side-effecting queries
//
// [ArrayWrapper.HasDuplicate], [ArrayWrapper.ReverseJoin] and
// [ArrayWrapper.IndexesOf] modify the sequence while answering.
// [ArrayWrapper.HasDuplicateValues] and [ArrayWrapper.JoinReversed] are the
// read-only variants.
//
// # Expressions
//
// Callbacks can also be written as expr-lang expressions, compiled once per
// call:
//
//	w.FilterExpr("value > 2 && key != 0")
//	w.SortByExpr("b - a")
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [ArrayWrapper.Macro]:
//
//	collections.RegisterMacro("evens", func(w *collections.ArrayWrapper, _ ...any) any {
//	    return w.Filter(func(v any) bool { return v.(int)%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
//
// An ArrayWrapper is not safe for concurrent use; the macro registry is.
package collections
