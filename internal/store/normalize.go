package store

import (
	"context"
	"fmt"
)

// Normalizer narrows the store's variably shaped responses into the three
// result shapes callers actually consume: many batches, one batch, one row.
// Each tier adds exactly one failure mode on top of the previous one, so a
// caller states how much shape it needs by picking the method.
type Normalizer struct {
	querier Querier
}

func NewNormalizer(q Querier) *Normalizer {
	return &Normalizer{querier: q}
}

// Execute runs stmt and returns the rows of every statement result.
// It fails with ErrEmptyResponse when the store produced no results at all,
// propagates any per-statement store error, and fails with ErrShapeMismatch
// when a result is not an array of object-shaped rows.
func (n *Normalizer) Execute(ctx context.Context, stmt string, args ...any) ([][]Object, error) {
	results, err := n.querier.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEmptyResponse
	}

	batches := make([][]Object, 0, len(results))
	for i, res := range results {
		if res.Err != nil {
			return nil, fmt.Errorf("statement %d failed: %w", i, res.Err)
		}
		rows, err := rowsOf(res.Value)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		batches = append(batches, rows)
	}

	return batches, nil
}

// ExecuteSingleBatch is Execute for statements expected to produce exactly
// one result; more than one fails with ErrTooManyBatches.
func (n *Normalizer) ExecuteSingleBatch(ctx context.Context, stmt string, args ...any) ([]Object, error) {
	batches, err := n.Execute(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	if len(batches) > 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyBatches, len(batches))
	}
	return batches[0], nil
}

// ExecuteSingleRow is ExecuteSingleBatch for statements expected to match
// exactly one row. Zero rows fail with ErrNoSuchRow, which callers treat as
// "not found" rather than a system error; more than one fails with
// ErrTooManyRows.
func (n *Normalizer) ExecuteSingleRow(ctx context.Context, stmt string, args ...any) (Object, error) {
	rows, err := n.ExecuteSingleBatch(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, ErrNoSuchRow
	case 1:
		return rows[0], nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrTooManyRows, len(rows))
	}
}

func rowsOf(value any) ([]Object, error) {
	switch v := value.(type) {
	case []Object:
		return v, nil
	case []any:
		rows := make([]Object, len(v))
		for i, item := range v {
			obj, ok := item.(Object)
			if !ok {
				return nil, fmt.Errorf("%w: row %d is %T, not an object", ErrShapeMismatch, i, item)
			}
			rows[i] = obj
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("%w: result is %T, not a row array", ErrShapeMismatch, value)
	}
}
