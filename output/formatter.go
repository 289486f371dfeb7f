package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Formatter writes rows in one output format, one row at a time.
//
// Implementers may buffer; Flush must be called once after the last row.
type Formatter interface {
	// SetOutput changes the output writer
	SetOutput(w io.Writer)

	// WriteRow emits one row
	WriteRow(row map[string]interface{}) error

	// Flush writes anything still buffered
	Flush() error
}

// Format names accepted by NewFormatter
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// Formats lists the supported format names
var Formats = []string{FormatTable, FormatCSV, FormatJSONL}

// NewFormatter returns the formatter registered under name. columns fixes
// the output column order for formats that have one.
func NewFormatter(name string, w io.Writer, columns []string) (Formatter, error) {
	switch strings.ToLower(name) {
	case FormatTable, "":
		return NewTableFormatter(w, columns), nil
	case FormatCSV:
		return NewCSVFormatter(w, columns), nil
	case FormatJSONL, "json":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: %s)", name, strings.Join(Formats, ", "))
	}
}

// sortedKeys returns the keys of row in lexical order. It is used when no
// column order was given.
func sortedKeys(row map[string]interface{}) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
