package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

// MaxCellWidth is the display width at which table cells are truncated
const MaxCellWidth = 48

const nullCell = "NULL"

// TableFormatter renders rows as a console table. Rows are buffered and the
// table is drawn on Flush, once column widths are known.
type TableFormatter struct {
	writer  io.Writer
	columns []string
	rows    [][]string
}

// NewTableFormatter creates a table formatter. If columns is empty the
// sorted keys of the first row are used.
func NewTableFormatter(w io.Writer, columns []string) *TableFormatter {
	return &TableFormatter{
		writer:  w,
		columns: append([]string(nil), columns...),
	}
}

// SetOutput sets the writer the table is rendered to
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// WriteRow buffers one row
func (t *TableFormatter) WriteRow(row map[string]interface{}) error {
	if len(t.columns) == 0 {
		t.columns = sortedKeys(row)
	}

	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		v, ok := row[col]
		if !ok || v == nil {
			cells[i] = nullCell
			continue
		}
		cells[i] = runewidth.Truncate(tableValue(v), MaxCellWidth, "…")
	}
	t.rows = append(t.rows, cells)
	return nil
}

// Flush renders the buffered rows. Nothing is written when no row was
// buffered.
func (t *TableFormatter) Flush() error {
	if len(t.rows) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(t.columns)
	table.AppendBulk(t.rows)
	table.Render()

	t.rows = nil
	return nil
}

// tableValue formats v like CSV output but without formula escaping
func tableValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return formatValue(val)
	}
}
