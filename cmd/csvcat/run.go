package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vegasq/csvcat/internal/config"
	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
)

// runQuery parses the query once, streams the data file through it and
// prints the matching projections. The summary line goes to stderr.
func runQuery(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, log *slog.Logger) (query.Stats, error) {
	q, err := query.Parse(cfg.Query)
	if err != nil {
		return query.Stats{}, fmt.Errorf("failed to parse query: %w", err)
	}
	log.Debug("query parsed", "query", q.String())

	formatter, err := output.NewFormatter(cfg.Format, stdout, q.Columns())
	if err != nil {
		return query.Stats{}, err
	}

	src, err := reader.Open(cfg.FilePath, readerOptions(cfg))
	if err != nil {
		return query.Stats{}, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Warn("failed to close source", "error", err)
		}
	}()
	log.Debug("source opened", "path", cfg.FilePath, "columns", src.Columns())

	if unknown := q.Unknown(src.Columns()); len(unknown) > 0 {
		log.Warn("query references columns missing from input", "columns", unknown)
	}

	opts := query.ExecuteOptions{
		Limit:  cfg.Limit,
		Logger: log,
	}
	if cfg.SkipMalformed {
		opts.Skip = func(err error) bool {
			return errors.Is(err, reader.ErrMalformedRow)
		}
	}

	stats, err := query.Execute(ctx, q, src, formatter, opts)
	if err != nil {
		return stats, err
	}
	if err := formatter.Flush(); err != nil {
		return stats, err
	}

	fmt.Fprintf(stderr, "Matched %d out of %d rows.\n", stats.Matched, stats.Scanned)
	log.Info("query finished",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"emitted", stats.Emitted,
		"skipped", stats.Skipped)
	return stats, nil
}

func readerOptions(cfg *config.Config) reader.Options {
	return reader.Options{
		Delimiter:  cfg.Delimiter,
		RawStrings: cfg.RawStrings,
	}
}
