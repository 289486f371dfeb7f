package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// RowSource yields rows one at a time. Next returns io.EOF once the
// source is exhausted.
type RowSource interface {
	Next() (Row, error)
}

// RowSink receives projected rows
type RowSink interface {
	WriteRow(row Row) error
}

// RowSinkFunc adapts a function to RowSink
type RowSinkFunc func(row Row) error

// WriteRow calls f(row)
func (f RowSinkFunc) WriteRow(row Row) error { return f(row) }

// ExecuteOptions tunes Execute
type ExecuteOptions struct {
	// Limit caps the number of rows handed to the sink; 0 means unlimited.
	// Scanning continues past the limit so Stats stay complete.
	Limit int

	// Skip reports whether a source error affects only the current row and
	// scanning may continue. Nil means every source error stops execution.
	Skip func(err error) bool

	// Logger receives debug and warning records; nil uses slog.Default().
	Logger *slog.Logger
}

// Stats summarizes one Execute call
type Stats struct {
	Scanned int
	Matched int
	Emitted int
	Skipped int
}

// Execute streams rows from src, keeps those matching q, projects them and
// writes the projections to sink in source order.
func Execute(ctx context.Context, q *Query, src RowSource, sink RowSink, opts ExecuteOptions) (Stats, error) {
	var stats Stats
	if opts.Limit < 0 {
		return stats, fmt.Errorf("limit must be non-negative, got %d", opts.Limit)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		row, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if opts.Skip != nil && opts.Skip(err) {
				stats.Skipped++
				logger.Warn("skipping row", "error", err)
				continue
			}
			return stats, fmt.Errorf("failed to read row %d: %w", stats.Scanned+stats.Skipped+1, err)
		}
		stats.Scanned++

		if !Match(q, row) {
			continue
		}
		stats.Matched++

		if opts.Limit > 0 && stats.Emitted >= opts.Limit {
			continue
		}
		if err := sink.WriteRow(Project(q, row)); err != nil {
			return stats, fmt.Errorf("failed to write row: %w", err)
		}
		stats.Emitted++
	}

	logger.Debug("scan finished",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"emitted", stats.Emitted,
		"skipped", stats.Skipped)

	return stats, nil
}
