package categorizer

import (
	"errors"
)

var (
	// ErrUnknownCategory is returned when a lookup names a category that was
	// never added to the index. Use ContainsCategory to check beforehand.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrValueNotFound is returned when an operation requires a value that is
	// not present in the index.
	ErrValueNotFound = errors.New("value not found")

	// ErrEmptyQuery is returned by LookupAnd when no category is given.
	ErrEmptyQuery = errors.New("empty category query")
)
