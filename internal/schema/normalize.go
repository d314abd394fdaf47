package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dwsmith1983/paddock/internal/table"
)

// NormalizeError reports an identifier cell that is not integer-coercible.
// One bad cell fails the whole file; there is no per-row skip.
type NormalizeError struct {
	Column string
	Row    int
	Value  string
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("column %q row %d: value %q is not an integer", e.Column, e.Row, e.Value)
}

// NormalizeID rewrites the designated identifier column in place to its
// canonical integer form. Upstream exports sometimes render integers as
// floats ("123.0"); exactly one literal trailing ".0" is stripped before the
// integer parse. Anything else fractional ("42.5", "42.00") fails — the
// intended domain values are integers and the rule is deliberately narrow.
func NormalizeID(rs *table.RecordSet, column string) error {
	idx := rs.ColumnIndex(column)
	if idx < 0 {
		return fmt.Errorf("identifier column %q not present", column)
	}
	for i, row := range rs.Rows {
		v := strings.TrimSuffix(row[idx], ".0")
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return &NormalizeError{Column: column, Row: i + 1, Value: row[idx]}
		}
		row[idx] = strconv.FormatInt(n, 10)
	}
	return nil
}
