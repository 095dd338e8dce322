package collections

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/ds-transformer/arr"
)

// SortOrder selects the direction of [ArrayWrapper.Sort].
//
// The values are the integers 1 and -1, so callers that pass a plain numeric
// flag (Sort(1), Sort(-1)) keep working.
type SortOrder int

const (
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

// String returns "ASC", "DESC", or the number for an invalid order.
func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// Valid reports whether o is Ascending or Descending.
func (o SortOrder) Valid() bool { return o == Ascending || o == Descending }

// ParseSortOrder converts v to a SortOrder. It accepts a SortOrder, any Go
// integer, the strings "asc"/"desc" (any case) and nil, which means
// Ascending. Any other value yields an error wrapping [ErrInvalidSortOrder].
func ParseSortOrder(v any) (SortOrder, error) {
	switch t := v.(type) {
	case nil:
		return Ascending, nil
	case SortOrder:
		if t.Valid() {
			return t, nil
		}
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSortOrder, int(t))
	case string:
		switch strings.ToLower(t) {
		case "asc":
			return Ascending, nil
		case "desc":
			return Descending, nil
		}
		return 0, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, t)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch rv.Int() {
		case 1:
			return Ascending, nil
		case -1:
			return Descending, nil
		}
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSortOrder, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() == 1 {
			return Ascending, nil
		}
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSortOrder, rv.Uint())
	}
	return 0, fmt.Errorf("%w: got %T", ErrInvalidSortOrder, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
//
// All sorts are stable and give the result fresh integer keys 0 … n-1.
// Values are ordered with PHP's standard comparison ([arr.Compare]).
// ─────────────────────────────────────────────────────────────────────────────

// Sort orders the values ascending (no argument, Ascending or 1) or
// descending (Descending or -1).
//
// Any other order, or more than one, returns an error wrapping
// [ErrInvalidSortOrder] and leaves the sequence unchanged:
//
//	_, err := collections.New(1, 2, 3).Sort(2)
//	// err: "collections: invalid argument: Order must be 1 (asc) or -1 (desc): got 2"
func (w *ArrayWrapper) Sort(order ...SortOrder) (*ArrayWrapper, error) {
	o := Ascending
	switch len(order) {
	case 0:
	case 1:
		o = order[0]
	default:
		return nil, fmt.Errorf("%w: got %d orders", ErrInvalidSortOrder, len(order))
	}
	if !o.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSortOrder, int(o))
	}
	if o == Descending {
		return w.SortDesc(), nil
	}
	return w.SortAsc(), nil
}

// SortAsc orders the values ascending.
func (w *ArrayWrapper) SortAsc() *ArrayWrapper {
	w.data = arr.Sort(w.data, arr.Compare)
	return w
}

// SortDesc orders the values descending.
func (w *ArrayWrapper) SortDesc() *ArrayWrapper {
	w.data = arr.Sort(w.data, func(a, b any) int { return arr.Compare(b, a) })
	return w
}

// SortByCallback orders the values with cmp.
//
//	w.SortByCallback(func(a, b any) int { return len(a.(string)) - len(b.(string)) })
func (w *ArrayWrapper) SortByCallback(cmp Comparator) *ArrayWrapper {
	w.data = arr.Sort(w.data, cmp)
	return w
}
