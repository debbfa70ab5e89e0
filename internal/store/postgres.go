package store

import (
	"context"
	"database/sql"
	"time"
)

// PostgresQuerier backs the Querier interface with database/sql. Each call
// runs a single parameterized statement; its outcome becomes the single
// element of the returned result slice, with execution errors carried
// per-statement so the Normalizer can propagate them uniformly.
type PostgresQuerier struct {
	db *sql.DB
}

func NewPostgresQuerier(db *sql.DB) *PostgresQuerier {
	return &PostgresQuerier{db: db}
}

func (q *PostgresQuerier) Query(ctx context.Context, stmt string, args ...any) ([]Result, error) {
	rows, err := q.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return []Result{{Err: err}}, nil
	}
	defer rows.Close()

	objects, err := collectObjects(rows)
	if err != nil {
		return []Result{{Err: err}}, nil
	}

	return []Result{{Value: objects}}, nil
}

func collectObjects(rows *sql.Rows) ([]Object, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	objects := []Object{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		obj := make(Object, len(cols))
		for i, col := range cols {
			obj[col] = normalizeValue(values[i])
		}
		objects = append(objects, obj)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return objects, nil
}

// normalizeValue flattens driver-specific scan types so callers can rely on
// string, int64, float64, bool, time.Time or nil.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t
	default:
		return v
	}
}
