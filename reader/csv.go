package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const utf8BOM = "\ufeff"

// CSVReader streams rows from delimited text with a header row.
//
// The header supplies the column names. Each later record becomes a row
// keyed by those names. Unless RawStrings is set, fields holding a
// canonical base-10 integer ("42", "-7", not "007") are returned as int64
// and all other fields as strings.
type CSVReader struct {
	name    string
	src     io.ReadCloser
	csv     *csv.Reader
	header  []string
	rawText bool
}

// NewCSVReader reads the header from src and returns a reader positioned
// at the first data row. name is used in error messages.
func NewCSVReader(src io.ReadCloser, name string, opts Options) (*CSVReader, error) {
	cr := csv.NewReader(src)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: missing header row", name)
		}
		return nil, fmt.Errorf("%s: failed to read header: %w", name, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	return &CSVReader{
		name:    name,
		src:     src,
		csv:     cr,
		header:  append([]string(nil), header...),
		rawText: opts.RawStrings,
	}, nil
}

// Columns returns the header names
func (r *CSVReader) Columns() []string {
	return append([]string(nil), r.header...)
}

// Next returns the next data row. A record whose field count differs from
// the header, or that is not valid CSV, yields a *RowError; the following
// call moves on to the next record.
func (r *CSVReader) Next() (map[string]interface{}, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, &RowError{File: r.name, Line: perr.StartLine, Err: perr.Err}
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.name, err)
	}

	row := make(map[string]interface{}, len(r.header))
	for i, column := range r.header {
		row[column] = r.convert(record[i])
	}
	return row, nil
}

// convert turns a field into an int64 when it is written as a canonical
// integer
func (r *CSVReader) convert(field string) interface{} {
	if r.rawText {
		return field
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != field {
		return field
	}
	return n
}

// Close releases the underlying stream
func (r *CSVReader) Close() error {
	return r.src.Close()
}
