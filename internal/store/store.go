package store

import (
	"context"
	"errors"
)

// Object is a single row as the store hands it back: field name to value.
type Object = map[string]any

// Result is the raw outcome of one statement. Exactly one of Err or Value
// is meaningful: a store-level failure for this statement, or a dynamically
// shaped value (row queries produce []Object).
type Result struct {
	Err   error
	Value any
}

// Querier runs a statement against the backing store and returns one Result
// per statement the store executed. Implementations must use parameterized
// statements exclusively; callers never interpolate values into stmt.
type Querier interface {
	Query(ctx context.Context, stmt string, args ...any) ([]Result, error)
}

var (
	ErrEmptyResponse  = errors.New("store returned no statement results")
	ErrShapeMismatch  = errors.New("store result has unexpected shape")
	ErrTooManyBatches = errors.New("store returned more than one statement result")
	ErrTooManyRows    = errors.New("statement matched more than one row")
	ErrNoSuchRow      = errors.New("statement matched no rows")
)
