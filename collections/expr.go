package collections

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hasbyte1/ds-transformer/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Expression callbacks
//
// The *Expr methods take an expr-lang expression instead of a Go callback.
// The expression is compiled once per call and evaluated for each element.
// Variables available to the expression:
//
//	FilterExpr, MapExpr, EveryExpr, AnyExpr   value, key
//	ReduceExpr                                carry, item
//	SortByExpr                                a, b
//
// Nested arrays are exposed as plain lists and maps, integer keys as int.
// Compile and evaluation errors are returned and leave the sequence
// unchanged.
// ─────────────────────────────────────────────────────────────────────────────

type elementEnv struct {
	Value any `expr:"value"`
	Key   any `expr:"key"`
}

type foldEnv struct {
	Carry any `expr:"carry"`
	Item  any `expr:"item"`
}

type pairEnv struct {
	A any `expr:"a"`
	B any `expr:"b"`
}

func exprValue(v any) any {
	if a, ok := v.(*arr.Array); ok && a != nil {
		return a.Native()
	}
	return v
}

func compileExpr(code string, env any) (*vm.Program, error) {
	program, err := expr.Compile(code, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("collections: compiling %q: %w", code, err)
	}
	return program, nil
}

// predicateExpr compiles code into a Predicate over elements. Evaluation
// errors are kept in *errp; after the first one the predicate returns false.
func predicateExpr(code string, errp *error) (func(arr.Key, any) bool, error) {
	program, err := compileExpr(code, elementEnv{})
	if err != nil {
		return nil, err
	}
	return func(k arr.Key, v any) bool {
		if *errp != nil {
			return false
		}
		out, err := expr.Run(program, elementEnv{Value: exprValue(v), Key: k.Value()})
		if err != nil {
			*errp = fmt.Errorf("collections: evaluating %q: %w", code, err)
			return false
		}
		b, ok := out.(bool)
		if !ok {
			*errp = fmt.Errorf("%w: %q returned %T, want bool", ErrExprResult, code, out)
			return false
		}
		return b
	}, nil
}

// FilterExpr keeps the elements for which the boolean expression code holds.
// Keys are preserved.
//
//	w.FilterExpr("value > 2")
func (w *ArrayWrapper) FilterExpr(code string) (*ArrayWrapper, error) {
	var evalErr error
	pred, err := predicateExpr(code, &evalErr)
	if err != nil {
		return nil, err
	}
	out := arr.FilterWithKey(w.data, pred)
	if evalErr != nil {
		return nil, evalErr
	}
	w.data = out
	return w, nil
}

// MapExpr replaces every value with the result of code. Keys are preserved.
//
//	w.MapExpr(`"item-" + string(value)`)
func (w *ArrayWrapper) MapExpr(code string) (*ArrayWrapper, error) {
	program, err := compileExpr(code, elementEnv{})
	if err != nil {
		return nil, err
	}
	out := arr.Make(w.data.Len())
	for k, v := range w.data.All() {
		res, err := expr.Run(program, elementEnv{Value: exprValue(v), Key: k.Value()})
		if err != nil {
			return nil, fmt.Errorf("collections: evaluating %q: %w", code, err)
		}
		out.Set(k, res)
	}
	w.data = out
	return w, nil
}

// EveryExpr reports whether code holds for every element.
func (w *ArrayWrapper) EveryExpr(code string) (bool, error) {
	var evalErr error
	pred, err := predicateExpr(code, &evalErr)
	if err != nil {
		return false, err
	}
	for k, v := range w.data.All() {
		if !pred(k, v) {
			return false, evalErr
		}
	}
	return true, nil
}

// AnyExpr reports whether code holds for at least one element.
func (w *ArrayWrapper) AnyExpr(code string) (bool, error) {
	var evalErr error
	pred, err := predicateExpr(code, &evalErr)
	if err != nil {
		return false, err
	}
	for k, v := range w.data.All() {
		if pred(k, v) {
			return true, nil
		}
		if evalErr != nil {
			return false, evalErr
		}
	}
	return false, nil
}

// ReduceExpr folds the values from left to right with code, starting with
// initial.
//
//	sum, err := w.ReduceExpr("carry + item", 0)
func (w *ArrayWrapper) ReduceExpr(code string, initial any) (any, error) {
	program, err := compileExpr(code, foldEnv{})
	if err != nil {
		return nil, err
	}
	carry := initial
	for _, v := range w.data.All() {
		carry, err = expr.Run(program, foldEnv{Carry: carry, Item: exprValue(v)})
		if err != nil {
			return nil, fmt.Errorf("collections: evaluating %q: %w", code, err)
		}
	}
	return carry, nil
}

// SortByExpr orders the values with the comparator expression code, which
// must return a number: negative when a sorts first, positive when b does.
// The sort is stable and the result gets fresh integer keys.
//
//	w.SortByExpr("b - a") // descending numbers
func (w *ArrayWrapper) SortByExpr(code string) (*ArrayWrapper, error) {
	program, err := compileExpr(code, pairEnv{})
	if err != nil {
		return nil, err
	}
	var evalErr error
	out := arr.Sort(w.data, func(a, b any) int {
		if evalErr != nil {
			return 0
		}
		res, err := expr.Run(program, pairEnv{A: exprValue(a), B: exprValue(b)})
		if err != nil {
			evalErr = fmt.Errorf("collections: evaluating %q: %w", code, err)
			return 0
		}
		switch res.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			return arr.Compare(res, 0)
		}
		evalErr = fmt.Errorf("%w: %q returned %T, want a number", ErrExprResult, code, res)
		return 0
	})
	if evalErr != nil {
		return nil, evalErr
	}
	w.data = out
	return w, nil
}
