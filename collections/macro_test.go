package collections_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/hasbyte1/ds-transformer/arr"
	"github.com/hasbyte1/ds-transformer/collections"
)

func TestMacro(t *testing.T) {
	defer collections.FlushMacros()

	collections.RegisterMacro("sumInts", func(w *collections.ArrayWrapper, _ ...any) any {
		return w.Reduce(func(carry, item any) any { return carry.(int) + item.(int) }, 0)
	})

	if !collections.HasMacro("sumInts") {
		t.Fatal("HasMacro should return true")
	}

	result, err := collections.New(1, 2, 3, 4, 5).Macro("sumInts")
	if err != nil {
		t.Fatalf("Macro error: %v", err)
	}
	if result != 15 {
		t.Fatalf("Macro result = %v; want 15", result)
	}
}

func TestMacroArgs(t *testing.T) {
	defer collections.FlushMacros()

	collections.RegisterMacro("times", func(w *collections.ArrayWrapper, args ...any) any {
		n := args[0].(int)
		return w.Map(func(v any) any { return v.(int) * n })
	})

	w := fixture()
	result, err := collections.CallMacro("times", w, 3)
	if err != nil {
		t.Fatalf("CallMacro error: %v", err)
	}
	if result != w {
		t.Fatal("macro should return the wrapper it was called on")
	}
	assertSequence(t, w, arr.List(3, 6, 9))
}

func TestMacroReplace(t *testing.T) {
	defer collections.FlushMacros()

	collections.RegisterMacro("name", func(*collections.ArrayWrapper, ...any) any { return "first" })
	collections.RegisterMacro("name", func(*collections.ArrayWrapper, ...any) any { return "second" })

	got, _ := fixture().Macro("name")
	if got != "second" {
		t.Fatalf("Macro = %v; want second", got)
	}
}

func TestMacroNotFound(t *testing.T) {
	_, err := fixture().Macro("nonexistent_macro_xyz")
	if !errors.Is(err, collections.ErrMacroNotFound) {
		t.Fatalf("err = %v; want ErrMacroNotFound", err)
	}
}

func TestFlushMacros(t *testing.T) {
	collections.RegisterMacro("tmp", func(*collections.ArrayWrapper, ...any) any { return nil })
	collections.FlushMacros()
	if collections.HasMacro("tmp") {
		t.Fatal("FlushMacros should remove every macro")
	}
}

func TestMacroConcurrent(t *testing.T) {
	defer collections.FlushMacros()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("count%d", i)
			collections.RegisterMacro(name, func(w *collections.ArrayWrapper, _ ...any) any { return w.Count() })
			if _, err := collections.New(1, 2).Macro(name); err != nil {
				t.Errorf("Macro(%s): %v", name, err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		if !collections.HasMacro(fmt.Sprintf("count%d", i)) {
			t.Fatalf("count%d missing", i)
		}
	}
}
