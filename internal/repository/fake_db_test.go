package repository

import (
	"context"
	"fmt"
	"time"

	"skillswap/internal/database"

	"github.com/google/uuid"
)

// fakeDB answers queries from canned results in call order.
type fakeDB struct {
	database.DB

	rows     [][][]any
	row      [][]any
	affected []int64
	queries  []string
	args     [][]any
}

func (f *fakeDB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, q)
	f.args = append(f.args, args)
	if len(f.rows) == 0 {
		return &fakeRows{}, nil
	}
	r := f.rows[0]
	f.rows = f.rows[1:]
	return &fakeRows{data: r, idx: -1}, nil
}

// QueryRow pops the next canned row. A row holding a single error fails Scan with it.
func (f *fakeDB) QueryRow(_ context.Context, q string, args ...any) database.Row {
	f.queries = append(f.queries, q)
	f.args = append(f.args, args)
	if len(f.row) == 0 {
		return fakeRow{err: database.ErrNoRows}
	}
	r := f.row[0]
	f.row = f.row[1:]
	if len(r) == 1 {
		if err, ok := r[0].(error); ok {
			return fakeRow{err: err}
		}
	}
	return fakeRow{vals: r}
}

func (f *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	f.queries = append(f.queries, q)
	f.args = append(f.args, args)
	if len(f.affected) == 0 {
		return 0, nil
	}
	n := f.affected[0]
	f.affected = f.affected[1:]
	return n, nil
}

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.idx], dest)
}

func (r *fakeRows) Err() error { return nil }

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.vals, dest)
}

func assign(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return fmt.Errorf("scan: got %d values for %d destinations", len(vals), len(dest))
	}
	for i, v := range vals {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			*d = v.(uuid.UUID)
		case *string:
			*d = v.(string)
		case *[]string:
			if v == nil {
				*d = nil
				continue
			}
			*d = v.([]string)
		case *time.Time:
			*d = v.(time.Time)
		case *bool:
			*d = v.(bool)
		case *int:
			*d = v.(int)
		default:
			return fmt.Errorf("scan: unsupported destination %T", dest[i])
		}
	}
	return nil
}
