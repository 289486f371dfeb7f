package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMalformedRow marks a data row that could not be decoded. Reading can
// continue with the next row.
var ErrMalformedRow = errors.New("malformed row")

// RowError reports a malformed data row
type RowError struct {
	File string
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Is makes every RowError match ErrMalformedRow
func (e *RowError) Is(target error) bool { return target == ErrMalformedRow }

// Source streams rows as maps keyed by column name. Next returns io.EOF
// after the last row.
type Source interface {
	Next() (map[string]interface{}, error)
	Columns() []string
	Close() error
}

// Options controls how files are decoded
type Options struct {
	// Delimiter is the CSV field delimiter; zero means ','.
	Delimiter rune
	// RawStrings keeps every CSV field as a string instead of converting
	// integer fields to int64.
	RawStrings bool
}

// Open opens path for streaming. Glob patterns open every matching file
// in turn. The format is picked from the extension: ".parquet" files are
// read as Parquet, everything else as CSV with a header row. CSV files may
// be compressed (.gz, .zst, .br, .lz4).
func Open(path string, opts Options) (Source, error) {
	if isGlob(path) {
		return openGlob(path, opts)
	}
	return openFile(path, opts)
}

func openFile(path string, opts Options) (Source, error) {
	codec, base := compressionOf(path)
	if strings.EqualFold(filepath.Ext(base), ".parquet") {
		if codec != "" {
			return nil, fmt.Errorf("compressed parquet files are not supported: %s", path)
		}
		return NewParquetReader(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	rc, err := decompress(file, codec)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open %s stream: %w", codec, err)
	}

	r, err := NewCSVReader(rc, path, opts)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return r, nil
}

// isGlob reports whether pattern contains glob wildcards
func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[]{}")
}
