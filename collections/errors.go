package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ArrayWrapper operations.
var (
	// ErrInvalidArgument is returned when an argument is outside the domain
	// an operation accepts (chunk size, sample size, sort order, …).
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrInvalidSortOrder is returned by Sort for an order other than
	// Ascending (1) or Descending (-1).
	ErrInvalidSortOrder = fmt.Errorf("%w: Order must be 1 (asc) or -1 (desc)", ErrInvalidArgument)

	// ErrKeyNotFound is returned when a lookup addresses a key that is not
	// present.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")

	// ErrExprResult is returned when a compiled expression evaluates to a
	// value of the wrong type.
	ErrExprResult = errors.New("collections: unexpected expression result")
)
