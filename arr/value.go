package arr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Casting
//
// These helpers reproduce the PHP conversions the array functions rely on:
// string casts for array_diff / array_unique / implode, the boolean cast for
// array_filter, and the "standard comparison" used by sort.
// ─────────────────────────────────────────────────────────────────────────────

// ToString converts v the way PHP's (string) cast does.
//
//	ToString(3)      // "3"
//	ToString(1.0)    // "1"
//	ToString(1e25)   // "1.0E+25"
//	ToString(true)   // "1"
//	ToString(false)  // ""
//	ToString(nil)    // ""
//	ToString(List()) // "Array"
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return formatFloat(float64(t))
	case float64:
		return formatFloat(t)
	case []byte:
		return string(t)
	case *Array:
		return "Array"
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}
	return fmt.Sprint(v)
}

// formatFloat prints f with 14 significant digits, PHP's default precision.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	s := strconv.FormatFloat(f, 'G', 14, 64)
	mant, exp, ok := strings.Cut(s, "E")
	if !ok {
		return s
	}
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	return mant + "E" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// Truthy converts v the way PHP's (bool) cast does: nil, false, zero
// numbers, "" and "0" and empty arrays are false; everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case *Array:
		return t != nil && t.Len() > 0
	}
	if n, ok := asNumber(v); ok {
		if n.isFloat {
			return n.f != 0
		}
		return n.i != 0
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Numbers
// ─────────────────────────────────────────────────────────────────────────────

type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func asNumber(v any) (number, bool) {
	switch t := v.(type) {
	case int:
		return number{i: int64(t)}, true
	case int8:
		return number{i: int64(t)}, true
	case int16:
		return number{i: int64(t)}, true
	case int32:
		return number{i: int64(t)}, true
	case int64:
		return number{i: t}, true
	case uint:
		return fromUint(uint64(t)), true
	case uint8:
		return number{i: int64(t)}, true
	case uint16:
		return number{i: int64(t)}, true
	case uint32:
		return number{i: int64(t)}, true
	case uint64:
		return fromUint(t), true
	case float32:
		return number{f: float64(t), isFloat: true}, true
	case float64:
		return number{f: t, isFloat: true}, true
	}
	return number{}, false
}

func fromUint(u uint64) number {
	if u > math.MaxInt64 {
		return number{f: float64(u), isFloat: true}
	}
	return number{i: int64(u)}
}

func compareNumbers(a, b number) int {
	if !a.isFloat && !b.isFloat {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		}
		return 0
	}
	x, y := a.float(), b.float()
	switch {
	case x == y:
		return 0
	case x < y:
		return -1
	}
	// Greater, or unordered because of NaN.
	return 1
}

// IsNumeric reports whether s is a PHP numeric string: optional surrounding
// whitespace, an optional sign, digits with an optional fraction, and an
// optional exponent.
func IsNumeric(s string) bool {
	_, ok := parseNumeric(s)
	return ok
}

func parseNumeric(s string) (number, bool) {
	s = strings.Trim(s, " \t\n\r\v\f")
	if s == "" {
		return number{}, false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits, isFloat := 0, false
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		isFloat = true
		for i++; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return number{}, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		isFloat = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			expDigits++
		}
		if expDigits == 0 {
			return number{}, false
		}
	}
	if i != len(s) {
		return number{}, false
	}
	if !isFloat {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return number{i: n}, true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return number{}, false
	}
	return number{f: f, isFloat: true}, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Compare orders a and b with PHP 8's standard comparison (the <=> operator)
// and returns -1, 0 or 1.
//
//   - numbers compare numerically
//   - a number and a numeric string compare numerically; a number and a
//     non-numeric string compare as strings
//   - two numeric strings compare numerically, other strings byte-wise
//   - bool or nil against anything compares the boolean casts, except nil
//     against a string which compares "" with the string
//   - arrays compare by length, then value by value under the same keys;
//     an array is greater than any scalar
func Compare(a, b any) int {
	aa, aIsArr := a.(*Array)
	ba, bIsArr := b.(*Array)
	switch {
	case aIsArr && bIsArr:
		return compareArrays(aa, ba)
	case aIsArr || bIsArr:
		if isNilOrBool(a) || isNilOrBool(b) {
			return compareBools(Truthy(a), Truthy(b))
		}
		if aIsArr {
			return 1
		}
		return -1
	}

	if a == nil || b == nil {
		if a == nil && b == nil {
			return 0
		}
		if s, ok := b.(string); ok {
			return compareStrings("", s)
		}
		if s, ok := a.(string); ok {
			return compareStrings(s, "")
		}
		return compareBools(Truthy(a), Truthy(b))
	}
	if _, ok := a.(bool); ok {
		return compareBools(Truthy(a), Truthy(b))
	}
	if _, ok := b.(bool); ok {
		return compareBools(Truthy(a), Truthy(b))
	}

	an, aNum := asNumber(a)
	bn, bNum := asNumber(b)
	as, aStr := a.(string)
	bs, bStr := b.(string)
	switch {
	case aNum && bNum:
		return compareNumbers(an, bn)
	case aNum && bStr:
		if n, ok := parseNumeric(bs); ok {
			return compareNumbers(an, n)
		}
		return compareStrings(ToString(a), bs)
	case aStr && bNum:
		if n, ok := parseNumeric(as); ok {
			return compareNumbers(n, bn)
		}
		return compareStrings(as, ToString(b))
	case aStr && bStr:
		if x, ok := parseNumeric(as); ok {
			if y, ok := parseNumeric(bs); ok {
				return compareNumbers(x, y)
			}
		}
		return compareStrings(as, bs)
	}
	return compareStrings(ToString(a), ToString(b))
}

func compareArrays(a, b *Array) int {
	if a == b {
		return 0
	}
	if a == nil {
		a = Make(0)
	}
	if b == nil {
		b = Make(0)
	}
	if c := cmpInt(a.Len(), b.Len()); c != 0 {
		return c
	}
	for _, e := range a.entries {
		other, ok := b.Get(e.Key)
		if !ok {
			// Uncomparable.
			return 1
		}
		if c := Compare(e.Value, other); c != 0 {
			return c
		}
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func compareStrings(a, b string) int { return strings.Compare(a, b) }

func isNilOrBool(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(bool)
	return ok
}

// LooseEqual reports whether a and b are equal after a string cast, the
// comparison used by array_diff, array_intersect and array_unique.
func LooseEqual(a, b any) bool { return ToString(a) == ToString(b) }

// Identical reports whether a and b are identical in the sense of PHP's ===
// operator: same dynamic type and same value. Arrays are identical when they
// hold identical values under the same keys in the same order.
func Identical(a, b any) bool {
	if aa, ok := a.(*Array); ok {
		ba, ok := b.(*Array)
		return ok && identicalArrays(aa, ba)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	if reflect.ValueOf(a).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func identicalArrays(a, b *Array) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Len() != b.Len() {
		return false
	}
	for i, e := range a.entries {
		o := b.entries[i]
		if e.Key != o.Key || !Identical(e.Value, o.Value) {
			return false
		}
	}
	return true
}
