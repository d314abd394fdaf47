// Package table holds the in-memory tabular form of one uploaded file.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RecordSet is an ordered set of rows parsed from one CSV file. Columns is
// the header row; every row has exactly len(Columns) cells.
type RecordSet struct {
	Columns []string
	Rows    [][]string
}

// Parse reads a CSV stream into a RecordSet. The first record is the header.
// Ragged rows are rejected by the CSV reader.
func Parse(r io.Reader) (*RecordSet, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	return &RecordSet{Columns: header, Rows: rows}, nil
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (rs *RecordSet) ColumnIndex(name string) int {
	for i, c := range rs.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
