package reader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

// maxGlobFiles limits how many files one pattern may open
const maxGlobFiles = 1000

// FileColumn is added to every row read through a glob pattern and holds
// the path of the file the row came from
const FileColumn = "_file"

// MultiReader streams the rows of several files one after another. Files
// are opened lazily, one at a time.
type MultiReader struct {
	paths   []string
	opts    Options
	current Source
	index   int
}

// openGlob expands pattern and returns a reader over all matches
func openGlob(pattern string, opts Options) (*MultiReader, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	if len(matches) > maxGlobFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxGlobFiles)
	}

	m := &MultiReader{paths: matches, opts: opts}
	if err := m.advance(); err != nil {
		return nil, err
	}
	return m, nil
}

// advance closes the current file and opens the next one
func (m *MultiReader) advance() error {
	if m.current != nil {
		if err := m.current.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", m.paths[m.index-1], err)
		}
		m.current = nil
	}
	if m.index >= len(m.paths) {
		return io.EOF
	}

	path := m.paths[m.index]
	src, err := openFile(path, m.opts)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	m.current = src
	m.index++
	return nil
}

// Next returns the next row, tagged with FileColumn
func (m *MultiReader) Next() (map[string]interface{}, error) {
	for m.current != nil {
		row, err := m.current.Next()
		if err == nil {
			row[FileColumn] = m.paths[m.index-1]
			return row, nil
		}
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
		if err := m.advance(); err != nil {
			return nil, err
		}
	}
	return nil, io.EOF
}

// Columns returns the columns of the file being read plus FileColumn
func (m *MultiReader) Columns() []string {
	if m.current == nil {
		return []string{FileColumn}
	}
	return append(m.current.Columns(), FileColumn)
}

// Files returns the matched paths in read order
func (m *MultiReader) Files() []string {
	return append([]string(nil), m.paths...)
}

// Close closes the file being read
func (m *MultiReader) Close() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Close()
	m.current = nil
	return err
}
