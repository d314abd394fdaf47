package store

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func quoteIdents(names []string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdent(n)
	}
	return quoted
}

// buildSchemaDDL renders DDL for the staging and results tables from the
// configured column list. The identifier column is BIGINT, everything else
// TEXT. The results table gets a uniqueness constraint over every column —
// the sole deduplication mechanism for merged data.
func buildSchemaDDL(t Tables) string {
	var b strings.Builder

	cols := func() string {
		var lines []string
		for _, c := range t.Columns {
			typ := "TEXT"
			if c == t.IDColumn {
				typ = "BIGINT"
			}
			lines = append(lines, fmt.Sprintf("    %s %s NOT NULL", quoteIdent(c), typ))
		}
		return strings.Join(lines, ",\n")
	}()

	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n%s\n);\n", quoteIdent(t.Staging), cols)
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n%s,\n    CONSTRAINT %s UNIQUE (%s)\n);\n",
		quoteIdent(t.Results), cols,
		quoteIdent(t.Results+"_row_key"),
		strings.Join(quoteIdents(t.Columns), ", "))

	return b.String()
}
