package collections

import (
	"fmt"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Macros
//
// A macro is a named operation attached to every ArrayWrapper at run time.
// The registry is shared by the whole process; registration and lookup may
// happen from any goroutine.
// ─────────────────────────────────────────────────────────────────────────────

// MacroFunc implements a macro. w is the wrapper the macro was invoked on and
// args are passed through unchanged from [ArrayWrapper.Macro].
type MacroFunc func(w *ArrayWrapper, args ...any) any

var (
	macrosMu sync.RWMutex
	macros   = map[string]MacroFunc{}
)

// RegisterMacro stores fn under name, replacing any earlier macro of that
// name.
//
//	collections.RegisterMacro("sum", func(w *collections.ArrayWrapper, _ ...any) any {
//	    return w.Reduce(func(c, v any) any { return c.(int) + v.(int) }, 0)
//	})
//	total, _ := collections.New(1, 2, 3).Macro("sum") // 6
func RegisterMacro(name string, fn MacroFunc) {
	macrosMu.Lock()
	macros[name] = fn
	macrosMu.Unlock()
}

// HasMacro reports whether name is registered.
func HasMacro(name string) bool {
	_, ok := lookupMacro(name)
	return ok
}

// FlushMacros empties the registry.
func FlushMacros() {
	macrosMu.Lock()
	clear(macros)
	macrosMu.Unlock()
}

// CallMacro runs the macro name against w. An unknown name yields an error
// wrapping [ErrMacroNotFound].
func CallMacro(name string, w *ArrayWrapper, args ...any) (any, error) {
	fn, ok := lookupMacro(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(w, args...), nil
}

// Macro runs the registered macro name on w. See [CallMacro].
func (w *ArrayWrapper) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, w, args...)
}

func lookupMacro(name string) (MacroFunc, bool) {
	macrosMu.RLock()
	defer macrosMu.RUnlock()
	fn, ok := macros[name]
	return fn, ok
}
