package collections_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/ds-transformer/arr"
	"github.com/hasbyte1/ds-transformer/collections"
)

func TestDefaultSort(t *testing.T) {
	w, err := collections.New(3, 1, 2).Sort()
	if err != nil {
		t.Fatal(err)
	}
	assertSequence(t, w, arr.List(1, 2, 3))
}

func TestSortWithIntOrder(t *testing.T) {
	w, err := fixture().Sort(-1)
	if err != nil {
		t.Fatal(err)
	}
	assertSequence(t, w, arr.List(3, 2, 1))

	w, err = collections.New(2, 3, 1).Sort(1)
	if err != nil {
		t.Fatal(err)
	}
	assertSequence(t, w, arr.List(1, 2, 3))
}

func TestSortWithEnumOrder(t *testing.T) {
	w, err := fixture().Sort(collections.Descending)
	if err != nil {
		t.Fatal(err)
	}
	assertSequence(t, w, arr.List(3, 2, 1))
}

func TestSortThrowInvalidArgumentError(t *testing.T) {
	for _, order := range [][]collections.SortOrder{{2}, {0}, {-2}, {1, -1}} {
		w := collections.New(3, 1, 2)
		got, err := w.Sort(order...)
		if !errors.Is(err, collections.ErrInvalidArgument) || !errors.Is(err, collections.ErrInvalidSortOrder) {
			t.Fatalf("Sort(%v) err = %v; want ErrInvalidSortOrder", order, err)
		}
		if !strings.Contains(err.Error(), "Order must be 1 (asc) or -1 (desc)") {
			t.Fatalf("message = %q", err.Error())
		}
		if got != nil {
			t.Fatalf("Sort(%v) returned a wrapper alongside an error", order)
		}
		assertSequence(t, w, arr.List(3, 1, 2))
	}
}

func TestSortDiscardsKeys(t *testing.T) {
	w := collections.Wrap(assoc(t, "b", 2, "a", 1, 9, 3)).SortDesc()
	assertSequence(t, w, arr.List(3, 2, 1))
}

func TestSortMixedValues(t *testing.T) {
	w := collections.New("10", 9, "abc", 2.5, true).SortAsc()
	// Compared with PHP 8 rules: numeric strings as numbers, "abc" above the
	// numbers it is compared with as strings, true equal to every truthy value.
	if w.Count() != 5 {
		t.Fatalf("Count = %d", w.Count())
	}
	first, _ := w.FindByIndex(0)
	if first != 2.5 {
		t.Fatalf("first = %v; want 2.5", first)
	}
}

func TestSortAscThenReverseEqualsSortDesc(t *testing.T) {
	inputs := [][]any{
		{5, 3, 9, 1},
		{"pear", "apple", "fig"},
		{2.5, -1, 10, 0},
	}
	for _, in := range inputs {
		asc := collections.New(in...).SortAsc().Reverse().Get()
		desc, err := collections.New(in...).Sort(collections.Descending)
		if err != nil {
			t.Fatal(err)
		}
		assertArray(t, asc, desc.Get())
	}
}

func TestSortIsStable(t *testing.T) {
	w := collections.New("bb", "a", "cc", "d").SortByCallback(func(a, b any) int {
		return len(a.(string)) - len(b.(string))
	})
	assertSequence(t, w, arr.List("a", "d", "bb", "cc"))
}

func TestSortByCallback(t *testing.T) {
	w := collections.New(3, 1, 2).SortByCallback(func(a, b any) int { return arr.Compare(a, b) })
	assertSequence(t, w, arr.List(1, 2, 3))
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in   any
		want collections.SortOrder
	}{
		{nil, collections.Ascending},
		{collections.Descending, collections.Descending},
		{1, collections.Ascending},
		{int8(-1), collections.Descending},
		{uint(1), collections.Ascending},
		{"DESC", collections.Descending},
		{"asc", collections.Ascending},
	}
	for _, tt := range tests {
		got, err := collections.ParseSortOrder(tt.in)
		if err != nil {
			t.Fatalf("ParseSortOrder(%v): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseSortOrder(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
	for _, in := range []any{2, -2, collections.SortOrder(0), "up", 1.0, uint(2)} {
		if _, err := collections.ParseSortOrder(in); !errors.Is(err, collections.ErrInvalidSortOrder) {
			t.Fatalf("ParseSortOrder(%v) err = %v; want ErrInvalidSortOrder", in, err)
		}
	}
}

func TestSortOrderString(t *testing.T) {
	if collections.Ascending.String() != "ASC" || collections.Descending.String() != "DESC" {
		t.Fatal("unexpected SortOrder names")
	}
	if got := collections.SortOrder(2).String(); got != "SortOrder(2)" {
		t.Fatalf("String = %q", got)
	}
}
