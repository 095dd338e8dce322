package arr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hasbyte1/ds-transformer/arr"
)

func TestToString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{true, "1"},
		{false, ""},
		{42, "42"},
		{int64(-7), "-7"},
		{uint64(math.MaxUint64), "18446744073709551615"},
		{1.0, "1"},
		{2.5, "2.5"},
		{-0.5, "-0.5"},
		{0.1 + 0.2, "0.3"},
		{1e25, "1.0E+25"},
		{1.5e-7, "1.5E-7"},
		{123456789012345678.0, "1.2345678901235E+17"},
		{math.Inf(1), "INF"},
		{math.Inf(-1), "-INF"},
		{math.NaN(), "NAN"},
		{float32(0.5), "0.5"},
		{"str", "str"},
		{[]byte("raw"), "raw"},
		{arr.List(1), "Array"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		if got := arr.ToString(tt.in); got != tt.want {
			t.Fatalf("ToString(%#v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, 0, 0.0, "", "0", arr.List(), uint(0)}
	for _, v := range falsy {
		if arr.Truthy(v) {
			t.Fatalf("Truthy(%#v) = true", v)
		}
	}
	truthy := []any{true, 1, -1, 0.1, "a", "0.0", " ", arr.List(0), struct{}{}}
	for _, v := range truthy {
		if !arr.Truthy(v) {
			t.Fatalf("Truthy(%#v) = false", v)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := map[string]bool{
		"1":      true,
		"-1.5":   true,
		" 42 ":   true,
		"1e3":    true,
		".5":     true,
		"5.":     true,
		"+7":     true,
		"":       false,
		"abc":    false,
		"1e":     false,
		"1.2.3":  false,
		"0x1A":   false,
		"-":      false,
		"12abc":  false,
		"1e9999": true,
	}
	for in, want := range tests {
		if got := arr.IsNumeric(in); got != want {
			t.Fatalf("IsNumeric(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"int float", 2, 1.5, 1},
		{"equal int float", 1, 1.0, 0},
		{"numeric strings", "10", "9", 1},
		{"number vs numeric string", 10, "10.0", 0},
		{"number vs text", 10, "abc", -1},
		{"strings", "apple", "banana", -1},
		{"null vs false", nil, false, 0},
		{"null vs empty string", nil, "", 0},
		{"null vs string", nil, "a", -1},
		{"bool vs number", true, 5, 0},
		{"bool vs zero", false, 0, 0},
		{"array vs scalar", arr.List(1), 99, 1},
		{"scalar vs array", "z", arr.List(), -1},
		{"array vs null", arr.List(), nil, 0},
		{"array by length", arr.List(1, 2), arr.List(9), 1},
		{"array by value", arr.List(1, 2), arr.List(1, 3), -1},
		{"nan", math.NaN(), 1.0, 1},
		{"big uint", uint64(math.MaxUint64), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arr.Compare(tt.a, tt.b); got != tt.want {
				t.Fatalf("Compare(%v, %v) = %d; want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareIsAntisymmetricForScalars(t *testing.T) {
	values := []any{nil, false, true, -1, 0, 1, 2.5, "", "0", "1", "a", "10"}
	for _, a := range values {
		for _, b := range values {
			if arr.Compare(a, b) != -arr.Compare(b, a) {
				t.Fatalf("Compare(%#v, %#v) = %d but Compare(%#v, %#v) = %d",
					a, b, arr.Compare(a, b), b, a, arr.Compare(b, a))
			}
		}
	}
}

func TestLooseEqual(t *testing.T) {
	if !arr.LooseEqual(1, "1") || !arr.LooseEqual(true, 1) || !arr.LooseEqual(nil, "") {
		t.Fatal("LooseEqual should cast to string")
	}
	if arr.LooseEqual(1, 1.5) {
		t.Fatal("LooseEqual(1, 1.5) should be false")
	}
}

func TestIdentical(t *testing.T) {
	same := [][2]any{
		{1, 1},
		{"a", "a"},
		{nil, nil},
		{arr.List(1, "x"), arr.List(1, "x")},
		{[]int{1}, []int{1}},
	}
	for _, p := range same {
		if !arr.Identical(p[0], p[1]) {
			t.Fatalf("Identical(%#v, %#v) = false", p[0], p[1])
		}
	}
	different := [][2]any{
		{1, "1"},
		{1, 1.0},
		{1, int64(1)},
		{nil, false},
		{arr.List(1, 2), arr.List(2, 1)},
		{arr.List(1), assoc(t, 1, 1)},
	}
	for _, p := range different {
		if arr.Identical(p[0], p[1]) {
			t.Fatalf("Identical(%#v, %#v) = true", p[0], p[1])
		}
	}
}
