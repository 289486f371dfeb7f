package output

import (
	"io"

	"github.com/segmentio/encoding/json"
)

// JSONFormatter outputs rows as JSON Lines, one object per row with keys
// in lexical order
type JSONFormatter struct {
	encoder *json.Encoder
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	j := &JSONFormatter{}
	j.SetOutput(w)
	return j
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.encoder = json.NewEncoder(w)
	j.encoder.SetEscapeHTML(false)
	j.encoder.SetSortMapKeys(true)
}

// WriteRow writes row as one line of JSON
func (j *JSONFormatter) WriteRow(row map[string]interface{}) error {
	return j.encoder.Encode(row)
}

// Flush is a no-op; every row is written as soon as it is encoded
func (j *JSONFormatter) Flush() error {
	return nil
}
