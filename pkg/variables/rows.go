package variables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one line of the variables table.
type Row struct {
	Line         int    // 1-based line in the source table, header included
	Method       Method
	RawMethod    string // method column as written
	VariableName string
	ScaleToken   string
	Alpha        string
}

const (
	colMethod   = "method"
	colVariable = "variablename"
	colToken    = "scaletoken"
	colAlpha    = "alpha"
)

// ErrMissingColumn is returned when the table header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ReadRows parses a comma-delimited table with a header row. Columns are
// matched by name; case, spaces, underscores and hyphens in header names are
// ignored, so "variableName" and "Variable Name" are the same column.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("failed to read header: table is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		key := normalizeHeader(name)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	for _, required := range []string{colMethod, colVariable, colToken} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, required)
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := cr.FieldPos(0)
		field := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		raw := field(colMethod)
		rows = append(rows, Row{
			Line:         line,
			Method:       ParseMethod(raw),
			RawMethod:    raw,
			VariableName: field(colVariable),
			ScaleToken:   field(colToken),
			Alpha:        field(colAlpha),
		})
	}

	return rows, nil
}

// ReadRowsFile reads the variables table stored at path.
func ReadRowsFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open variables table %q: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}
