// Package schema validates uploaded files against the expected column set
// and normalizes the identifier column before staging.
package schema

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// columnsTxt is the bundled expected-columns artifact, one name per line.
//
//go:embed columns.txt
var columnsTxt []byte

// DefaultColumns returns the expected column list from the bundled artifact.
// The list is loaded once per call site at startup and treated as immutable
// for the process lifetime.
func DefaultColumns() ([]string, error) {
	return ParseColumns(bytes.NewReader(columnsTxt))
}

// LoadColumns reads an expected-columns file from disk.
func LoadColumns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening columns file: %w", err)
	}
	defer f.Close()
	cols, err := ParseColumns(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cols, nil
}

// ParseColumns parses a plain-text column list: one name per line, blank
// lines ignored. An empty result is an error — the validation contract is
// meaningless without expected columns.
func ParseColumns(r io.Reader) ([]string, error) {
	var cols []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		cols = append(cols, name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no column names found")
	}
	return cols, nil
}
