// Package csvtable loads a CSV file with arbitrary, unknown columns into an
// ordered in-memory table. Column binding happens later in the mapper, so the
// loader makes no assumptions about the header beyond its existence.
package csvtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// RawRecord is one input row as a mapping from original column name to the
// raw cell value.
type RawRecord map[string]string

// Table is the raw input table: the header in file order plus the ordered
// row sequence.
type Table struct {
	Columns []string
	Rows    []RawRecord
}

// Load reads the CSV file at path into a Table.
func Load(path string, delimiter rune) (*Table, error) {
	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	table, err := Read(file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file %s: %w", path, err)
	}
	return table, nil
}

// Read parses CSV data from r into a Table. Ragged rows are tolerated:
// missing cells are empty strings, extra cells are dropped. A file without a
// header row is an error.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	// Strip a UTF-8 BOM that some bank exports prepend to the first column.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	table := &Table{Columns: columns}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV record: %w", err)
		}

		row := make(RawRecord, len(columns))
		for i, name := range columns {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// Get returns the cell value for a column, or an empty string if the column
// is absent.
func (r RawRecord) Get(column string) string {
	return r[column]
}
