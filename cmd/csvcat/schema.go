package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vegasq/csvcat/internal/config"
	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/reader"
)

// runSchema prints one row per column of the data file. For a glob
// pattern the first match is described.
func runSchema(cfg *config.Config, stdout, stderr io.Writer, log *slog.Logger) error {
	path, matched, err := reader.ResolveSchemaPath(cfg.FilePath)
	if err != nil {
		return err
	}
	if matched > 1 {
		fmt.Fprintf(stderr, "# Showing schema from: %s (%d files matched)\n", path, matched)
	}

	infos, err := reader.ExtractSchemaInfo(path, readerOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to read schema of %s: %w", path, err)
	}
	log.Debug("schema extracted", "path", path, "fields", len(infos))

	formatter, err := output.NewFormatter(cfg.Format, stdout, reader.SchemaColumns)
	if err != nil {
		return err
	}
	for _, info := range infos {
		if err := formatter.WriteRow(info.Map()); err != nil {
			return err
		}
	}
	return formatter.Flush()
}
