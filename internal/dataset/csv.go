package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// NameColumn is the column holding the MEP's full display name in every table.
const NameColumn = "full_name_title"

// table is a CSV file read into memory with a header index.
type table struct {
	columns map[string]int
	rows    [][]string
}

// readTable reads a CSV file whose first row is a header.
// The required columns must be present in the header.
func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, malformed(path, "empty file, expected a header row")
		}
		return nil, malformed(path, "reading header: %v", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, malformed(path, "missing column %q", name)
		}
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(path, "%v", err)
		}
		rows = append(rows, rec)
	}

	return &table{columns: columns, rows: rows}, nil
}

// get returns the trimmed value of column in row, or "" when the column is absent.
func (t *table) get(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// InvalidRow is a table row skipped because it failed validation.
// The rest of the table stays usable.
type InvalidRow struct {
	Line   int    `json:"line"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

// invalidRow records row index (0-based, header excluded) as its file line.
func invalidRow(index int, name string, err error) InvalidRow {
	return InvalidRow{Line: index + 2, Name: name, Reason: err.Error()}
}
