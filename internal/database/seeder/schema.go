package seeder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"skillswap/internal/database"
)

// RequireColumns fails unless every listed table.column exists in the public
// schema. All missing columns are reported together.
func RequireColumns(ctx context.Context, q database.Querier, want map[string][]string) error {
	if q == nil {
		return errors.New("nil db")
	}
	if len(want) == 0 {
		return nil
	}

	tables := make([]string, 0, len(want))
	for t := range want {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	rows, err := q.Query(ctx,
		`SELECT table_name, column_name FROM information_schema.columns
		 WHERE table_schema = 'public' AND table_name = ANY($1)`,
		tables,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var table, col string
		if err := rows.Scan(&table, &col); err != nil {
			return err
		}
		existing[table+"."+col] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, t := range tables {
		for _, col := range want[t] {
			if _, ok := existing[t+"."+col]; !ok {
				missing = append(missing, t+"."+col)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}
