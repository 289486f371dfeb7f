// Package output writes query results in several formats.
//
// Formatters receive rows one at a time through WriteRow and must be
// flushed once after the last row. Column order is fixed when the
// formatter is created; rows missing a column get an empty cell.
//
// # Supported Formats
//
//   - table: a console table (the default); rows are buffered until Flush
//   - csv: comma-separated values with a header row
//   - jsonl: one JSON object per line, written as rows arrive
//
// # Basic Usage
//
//	f, err := output.NewFormatter("csv", os.Stdout, q.Columns())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range rows {
//	    if err := f.WriteRow(row); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if err := f.Flush(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Type Handling
//
// CSV and table cells print integers in base 10, floats with %g and nil as
// empty (NULL in tables). CSV cells starting with a formula character are
// prefixed with a single quote so spreadsheets show them as text.
package output
