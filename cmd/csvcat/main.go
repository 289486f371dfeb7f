package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vegasq/csvcat/internal/config"
	"github.com/vegasq/csvcat/internal/logger"
	"github.com/vegasq/csvcat/query"
)

const longHelp = `Stream rows from a CSV or Parquet file, keep those matching a query
and print the selected columns.

Query format:
  PROJECT col1, col2 FILTER col3 = "text" AND col4 > 10

Every setting can also come from the environment or a .env file:
  QUERY, CSV_FILE_PATH, CSVCAT_FORMAT, CSVCAT_LIMIT, CSVCAT_DELIMITER,
  CSVCAT_RAW_STRINGS, CSVCAT_SKIP_MALFORMED, CSVCAT_LOG_LEVEL, CSVCAT_LOG_FORMAT`

const examples = `  csvcat -q 'PROJECT name, age FILTER age > 30' people.csv
  csvcat -q 'PROJECT name' -f jsonl 'logs/2024-*.csv.gz'
  csvcat -q 'PROJECT id FILTER status = "active"' -f csv data.parquet
  csvcat --schema people.csv`

func main() {
	if err := config.LoadEnvFiles("."); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		if errors.Is(err, config.ErrMissingQuery) || errors.Is(err, config.ErrMissingFile) {
			fmt.Fprintf(os.Stderr, "\n%s", cmd.UsageString())
		}
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the csvcat command writing results to stdout and
// diagnostics to stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "csvcat [flags] <file>",
		Short:         "Filter and project rows of CSV and Parquet files",
		Long:          longHelp,
		Example:       examples,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), args)
			if err != nil {
				return err
			}

			log, _ := logger.WithRunID(logger.New(stderr, logger.Config{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
			}))

			if cfg.Schema {
				return runSchema(cfg, stdout, stderr, log)
			}
			_, err = runQuery(cmd.Context(), cfg, stdout, stderr, log)
			return err
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// printError reports err in red, with a hint for the common cases
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprintf(w, "Error: %v\n", err)

	var perr *query.ParseError
	switch {
	case errors.As(err, &perr):
		fmt.Fprintf(w, "\nQuery format: PROJECT <columns> [FILTER <column> <op> <value> [AND ...]]\n")
		fmt.Fprintf(w, "Example: PROJECT name, age FILTER age > 30\n")
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(w, "Please check the file path and try again.\n")
	}
}
