// Package arr implements PHP-style arrays for Go: an ordered hash map from
// integer or string keys to arbitrary values, together with standalone
// equivalents of PHP's array_* functions.
//
// # The Array type
//
// [Array] keeps insertion order and tracks the next free integer key, so it
// can act both as a list and as an associative array:
//
//	a := arr.List(1, 2, 3)               // [1 2 3]
//	a.Append(4)                          // key 3
//	a.Set(arr.StringKey("name"), "Ada")  // {0:1 1:2 2:3 3:4 name:Ada}
//
// String keys holding canonical integers ("7") become integer keys, as in
// PHP. Nested Go slices and maps are converted to *Array on insertion.
//
// # Array functions
//
// The functions never modify their input; each returns a new array. Whether
// they keep or renumber keys follows PHP:
//
//	arr.Filter(a, pred)           // keys preserved (array_filter)
//	arr.Slice(a, 1, 1, true)      // keys preserved on request (array_slice)
//	arr.Merge(a, b)               // integer keys renumbered (array_merge)
//	arr.Splice(a, 0, 1)           // integer keys renumbered (array_splice)
//	arr.Sort(a, nil)              // fresh list (sort)
//
// # Value semantics
//
// Set operations ([Diff], [Intersect], [Unique]) compare string casts
// ([ToString]); searching ([Search], [InArray]) uses strict identity
// ([Identical]); sorting uses PHP 8's standard comparison ([Compare]).
//
// # Dot notation and encodings
//
// [Get], [Set], [Has], [Forget], [Dot] and [Undot] address nested arrays
// with dot-separated paths. Arrays encode to JSON (objects keep their
// order), YAML via goccy/go-yaml and MessagePack via shamaton/msgpack.
package arr
