package arr

import (
	"fmt"
	"math"
	"strconv"
)

// Key is an array key: either an integer or a string.
//
// The zero Key is the integer key 0. Keys are comparable and can be used as
// Go map keys.
type Key struct {
	s     string
	n     int
	isStr bool
}

// IntKey returns the integer key n.
func IntKey(n int) Key { return Key{n: n} }

// StringKey returns the key for s. Strings holding a canonical decimal
// integer ("7", "-3" but not "07", "+3" or "-0") become integer keys, exactly
// like PHP array keys.
func StringKey(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return Key{n: n}
	}
	return Key{s: s, isStr: true}
}

// KeyOf converts v to a Key using PHP's key casting rules: integers are
// used as-is, strings go through [StringKey], bools become 0 or 1, floats
// are truncated and nil becomes the empty string.
func KeyOf(v any) (Key, error) {
	switch t := v.(type) {
	case Key:
		return t, nil
	case nil:
		return StringKey(""), nil
	case string:
		return StringKey(t), nil
	case bool:
		if t {
			return IntKey(1), nil
		}
		return IntKey(0), nil
	case int:
		return IntKey(t), nil
	case int8:
		return IntKey(int(t)), nil
	case int16:
		return IntKey(int(t)), nil
	case int32:
		return IntKey(int(t)), nil
	case int64:
		if t > math.MaxInt || t < math.MinInt {
			return Key{}, fmt.Errorf("%w: %d overflows int", ErrInvalidKey, t)
		}
		return IntKey(int(t)), nil
	case uint:
		return uintKey(uint64(t))
	case uint8:
		return IntKey(int(t)), nil
	case uint16:
		return IntKey(int(t)), nil
	case uint32:
		return uintKey(uint64(t))
	case uint64:
		return uintKey(t)
	case float32:
		return floatKey(float64(t))
	case float64:
		return floatKey(t)
	}
	return Key{}, fmt.Errorf("%w: got %T", ErrInvalidKey, v)
}

func uintKey(u uint64) (Key, error) {
	if u > math.MaxInt {
		return Key{}, fmt.Errorf("%w: %d overflows int", ErrInvalidKey, u)
	}
	return IntKey(int(u)), nil
}

func floatKey(f float64) (Key, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt || f <= math.MinInt {
		return Key{}, fmt.Errorf("%w: %v cannot be truncated to int", ErrInvalidKey, f)
	}
	return IntKey(int(f)), nil
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return !k.isStr }

// IsString reports whether k is a string key.
func (k Key) IsString() bool { return k.isStr }

// Int returns the integer value of k and whether k is an integer key.
func (k Key) Int() (int, bool) { return k.n, !k.isStr }

// Value returns the key as an int or a string.
func (k Key) Value() any {
	if k.isStr {
		return k.s
	}
	return k.n
}

// String returns the textual form of the key.
func (k Key) String() string {
	if k.isStr {
		return k.s
	}
	return strconv.Itoa(k.n)
}

// GoString makes %#v print integer and string keys distinguishably.
func (k Key) GoString() string {
	if k.isStr {
		return strconv.Quote(k.s)
	}
	return strconv.Itoa(k.n)
}

// compareKeys orders integer keys before string keys, integers numerically
// and strings byte-wise.
func compareKeys(a, b Key) int {
	switch {
	case !a.isStr && !b.isStr:
		return cmpInt(a.n, b.n)
	case !a.isStr:
		return -1
	case !b.isStr:
		return 1
	case a.s < b.s:
		return -1
	case a.s > b.s:
		return 1
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func canonicalInt(s string) (int, bool) {
	if s == "0" {
		return 0, true
	}
	if s == "" || len(s) > 20 {
		return 0, false
	}
	i := 0
	if s[0] == '-' {
		i = 1
		if len(s) == 1 {
			return 0, false
		}
	}
	if s[i] < '1' || s[i] > '9' {
		return 0, false
	}
	for j := i + 1; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Equal reports whether k and o are the same key.
func (k Key) Equal(o Key) bool { return k == o }
