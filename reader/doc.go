// Package reader streams rows out of CSV and Parquet files.
//
// Every reader returns rows one at a time as maps keyed by column name,
// so a file never has to fit in memory.
//
// # Basic Usage
//
//	src, err := reader.Open("people.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	for {
//	    row, err := src.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(row)
//	}
//
// # Formats
//
//   - CSV: the first record is the header. Integer fields become int64
//     unless Options.RawStrings is set; all other fields stay strings.
//   - Parquet: values keep their parquet types (int32, int64, float64,
//     bool, string, ...).
//
// CSV input may be compressed; the codec is chosen by extension:
// .gz (gzip), .zst (zstd), .br (brotli) and .lz4 (lz4).
//
// # Multi-file Operations
//
// Glob patterns read every matching file in lexical order and tag each row
// with a "_file" column holding its source path:
//
//	src, err := reader.Open("logs/2024-*.csv.gz", reader.Options{})
//
// # Malformed Rows
//
// A CSV record with the wrong number of fields, or broken quoting, is
// reported as a *RowError matching ErrMalformedRow. The next call to Next
// continues with the following record, so callers may skip bad rows.
package reader
