package arr_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/hasbyte1/ds-transformer/arr"
)

// FuzzStringKey ensures that key normalisation never changes the textual
// form of a key.
func FuzzStringKey(f *testing.F) {
	for _, s := range []string{"", "0", "-0", "07", "42", "-42", "9223372036854775808", "abc", "1e3"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		k := arr.StringKey(s)
		if k.String() != s {
			t.Fatalf("StringKey(%q).String() = %q", s, k.String())
		}
	})
}

// FuzzFromJSON ensures that decoding arbitrary input never panics and that
// anything decoded can be encoded again.
func FuzzFromJSON(f *testing.F) {
	for _, s := range []string{`[]`, `{}`, `[1,"a",null]`, `{"0":1,"x":{"y":[true]}}`, `[1.5e300]`, `{"a":1,"a":2}`, `[`, `42`} {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		a, err := arr.FromJSON(b)
		if err != nil {
			return
		}
		if _, err := json.Marshal(a); err != nil {
			t.Fatalf("Marshal after FromJSON(%q): %v", b, err)
		}
	})
}

// FuzzCompare ensures that Compare never panics and stays antisymmetric for
// strings, whatever they contain.
func FuzzCompare(f *testing.F) {
	f.Add("1", "01")
	f.Add("abc", "1e3")
	f.Add(" 5", "5 ")
	f.Fuzz(func(t *testing.T, a, b string) {
		if arr.Compare(a, b) != -arr.Compare(b, a) {
			t.Fatalf("Compare(%q, %q) is not antisymmetric", a, b)
		}
		_ = arr.IsNumeric(a)
	})
}

// FuzzToString ensures that the string form of any finite number is itself
// a numeric string.
func FuzzToString(f *testing.F) {
	for _, v := range []float64{0, -0.5, 0.1, 1e25, 1.5e-7, 123456789012345678} {
		f.Add(v)
	}
	f.Fuzz(func(t *testing.T, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		if s := arr.ToString(v); !arr.IsNumeric(s) {
			t.Fatalf("ToString(%v) = %q is not numeric", v, s)
		}
	})
}
