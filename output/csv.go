package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVFormatter outputs rows as CSV with a header row
type CSVFormatter struct {
	writer      *csv.Writer
	columns     []string
	wroteHeader bool
}

// NewCSVFormatter creates a new CSV formatter. If columns is empty the
// sorted keys of the first row are used.
func NewCSVFormatter(w io.Writer, columns []string) *CSVFormatter {
	return &CSVFormatter{
		writer:  csv.NewWriter(w),
		columns: append([]string(nil), columns...),
	}
}

// SetOutput sets the output writer. Buffered records go to the old writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer.Flush()
	c.writer = csv.NewWriter(w)
}

// WriteRow writes one record, preceded by the header on the first call.
// Columns missing from row are written empty.
func (c *CSVFormatter) WriteRow(row map[string]interface{}) error {
	if !c.wroteHeader {
		if len(c.columns) == 0 {
			c.columns = sortedKeys(row)
		}
		if err := c.writer.Write(c.columns); err != nil {
			return err
		}
		c.wroteHeader = true
	}

	record := make([]string, len(c.columns))
	for i, col := range c.columns {
		record[i] = formatValue(row[col])
	}
	return c.writer.Write(record)
}

// Flush flushes buffered records
func (c *CSVFormatter) Flush() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// formatValue converts a value to string for text output
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		// Prefix cells that a spreadsheet would evaluate as a formula
		if len(val) > 0 {
			firstChar := val[0]
			if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' || firstChar == '\t' || firstChar == '\r' || firstChar == '\n' || firstChar == '|' {
				return "'" + strings.ReplaceAll(val, "'", "''")
			}
		}
		return val
	case []byte:
		return formatValue(string(val))
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
