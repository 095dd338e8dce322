package collections_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/ds-transformer/arr"
	"github.com/hasbyte1/ds-transformer/collections"
)

// fixture returns a wrapper around [1 2 3].
func fixture() *collections.ArrayWrapper { return collections.New(1, 2, 3) }

// assoc builds an array from alternating key/value arguments.
func assoc(t *testing.T, kv ...any) *arr.Array {
	t.Helper()
	a := arr.Make(len(kv) / 2)
	for i := 0; i+1 < len(kv); i += 2 {
		k, err := arr.KeyOf(kv[i])
		if err != nil {
			t.Fatalf("assoc: %v", err)
		}
		a.Set(k, kv[i+1])
	}
	return a
}

func assertArray(t *testing.T, got, want *arr.Array) {
	t.Helper()
	if diff := cmp.Diff(want.Entries(), got.Entries()); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s\ngot=%v want=%v", diff, got, want)
	}
}

func assertSequence(t *testing.T, w *collections.ArrayWrapper, want *arr.Array) {
	t.Helper()
	assertArray(t, w.Get(), want)
}
