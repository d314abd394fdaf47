package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dwsmith1983/paddock/internal/table"
)

// LoadAndMerge stages the record set and merges it into the permanent table
// as one atomic unit, returning the number of newly inserted rows.
//
// The whole sequence runs in a single transaction holding an exclusive lock
// on the staging table, so concurrent invocations cannot interleave there:
//
//	lock staging -> truncate -> bulk copy -> distinct insert -> truncate -> commit
//
// Rows already present in the permanent table conflict on the full-row
// uniqueness constraint and are skipped silently. Any failure before commit
// rolls back, leaving the permanent table unchanged and staging empty at rest.
func (s *Store) LoadAndMerge(ctx context.Context, rs *table.RecordSet) (int64, error) {
	rows, err := s.copyRows(rs)
	if err != nil {
		return 0, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	staging := quoteIdent(s.tables.Staging)

	// Upload dates arrive in day/month/year order.
	if _, err := tx.Exec(ctx, "SET LOCAL datestyle = 'ISO, DMY'"); err != nil {
		return 0, fmt.Errorf("set datestyle: %w", err)
	}

	if _, err := tx.Exec(ctx, "LOCK TABLE "+staging+" IN ACCESS EXCLUSIVE MODE"); err != nil {
		return 0, fmt.Errorf("lock %s: %w", s.tables.Staging, err)
	}

	// Clear leftovers from any prior failed run.
	if _, err := tx.Exec(ctx, "TRUNCATE "+staging); err != nil {
		return 0, fmt.Errorf("truncate %s: %w", s.tables.Staging, err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{s.tables.Staging}, s.tables.Columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("staging copy: %w", err)
	}
	if copied != int64(len(rows)) {
		return 0, fmt.Errorf("staging copy: wrote %d of %d rows", copied, len(rows))
	}

	tag, err := tx.Exec(ctx, buildMergeSQL(s.tables))
	if err != nil {
		return 0, fmt.Errorf("merge into %s: %w", s.tables.Results, err)
	}
	inserted := tag.RowsAffected()

	if _, err := tx.Exec(ctx, "TRUNCATE "+staging); err != nil {
		return 0, fmt.Errorf("truncate %s after merge: %w", s.tables.Staging, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// buildMergeSQL renders the staged-to-permanent insert. DISTINCT collapses
// duplicates within the staged batch; ON CONFLICT DO NOTHING skips rows the
// permanent table already holds.
func buildMergeSQL(t Tables) string {
	cols := strings.Join(quoteIdents(t.Columns), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) SELECT DISTINCT %s FROM %s ON CONFLICT DO NOTHING",
		quoteIdent(t.Results), cols, cols, quoteIdent(t.Staging))
}

// copyRows converts record-set rows into CopyFrom values, with the
// identifier column as int64. The record set was validated and normalized
// upstream, so its column order matches the configured table layout.
func (s *Store) copyRows(rs *table.RecordSet) ([][]interface{}, error) {
	idIdx := rs.ColumnIndex(s.tables.IDColumn)
	rows := make([][]interface{}, len(rs.Rows))
	for i, row := range rs.Rows {
		vals := make([]interface{}, len(row))
		for j, cell := range row {
			if j == idIdx {
				n, err := strconv.ParseInt(cell, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("row %d: identifier %q not normalized: %w", i+1, cell, err)
				}
				vals[j] = n
				continue
			}
			vals[j] = cell
		}
		rows[i] = vals
	}
	return rows, nil
}
