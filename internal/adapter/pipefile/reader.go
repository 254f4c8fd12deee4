// Package pipefile reads the pipe-delimited exports the payroll system
// produces: a header row followed by one record per line.
package pipefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing column")

// Table is a parsed file. Header names and cell values are trimmed.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// Read decodes and parses one file. Rows with more fields than the header
// are skipped; shorter rows are padded with empty cells.
func Read(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	text, _, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode file: %w", err)
	}
	return Parse(text)
}

// Parse splits already decoded text into a Table.
func Parse(text string) (*Table, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = '|'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &Table{Header: trimAll(header), index: make(map[string]int, len(header))}
	for i, name := range t.Header {
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// malformed line, skip it like any other bad row
			continue
		}
		if len(rec) > len(t.Header) {
			continue
		}
		row := trimAll(rec)
		for len(row) < len(t.Header) {
			row = append(row, "")
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Require returns the positions of the named columns.
func (t *Table) Require(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	var missing []string
	for i, name := range names {
		pos, ok := t.index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		idx[i] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
