package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prison-jobs/internal/database"
)

const columnsQuery = `SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1`

// EnsureTableColumns fails when the migrated schema lacks a column a seeder
// writes, so a stale database is reported before any row is inserted.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return errors.New("seed schema check: database not connected")
	}
	if table == "" || len(columns) == 0 {
		return fmt.Errorf("seed schema check: table and columns are required")
	}

	rows, err := db.Query(ctx, columnsQuery, table)
	if err != nil {
		return fmt.Errorf("read columns of %s: %w", table, err)
	}
	defer rows.Close()

	have := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("read columns of %s: %w", table, err)
		}
		have[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read columns of %s: %w", table, err)
	}

	var missing []string
	for _, col := range columns {
		if _, ok := have[col]; !ok {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: missing column %s (run `prison-jobs migrate` first)", strings.Join(missing, ", "))
	}
	return nil
}
