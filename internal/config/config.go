package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Each is bound to a flag of the same name and to the
// environment variable in envNames.
const (
	KeyQuery         = "query"
	KeyFile          = "file"
	KeyFormat        = "format"
	KeyLimit         = "limit"
	KeyDelimiter     = "delimiter"
	KeyRawStrings    = "raw-strings"
	KeySkipMalformed = "skip-malformed"
	KeySchema        = "schema"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
)

var envNames = map[string]string{
	KeyQuery:         "QUERY",
	KeyFile:          "CSV_FILE_PATH",
	KeyFormat:        "CSVCAT_FORMAT",
	KeyLimit:         "CSVCAT_LIMIT",
	KeyDelimiter:     "CSVCAT_DELIMITER",
	KeyRawStrings:    "CSVCAT_RAW_STRINGS",
	KeySkipMalformed: "CSVCAT_SKIP_MALFORMED",
	KeyLogLevel:      "CSVCAT_LOG_LEVEL",
	KeyLogFormat:     "CSVCAT_LOG_FORMAT",
}

var (
	ErrMissingQuery = errors.New("missing query: set QUERY or pass -q")
	ErrMissingFile  = errors.New("missing data file: set CSV_FILE_PATH or pass a file argument")
)

// Config holds the settings of one run
type Config struct {
	Query         string
	FilePath      string
	Format        string
	Limit         int
	Delimiter     rune
	RawStrings    bool
	SkipMalformed bool
	Schema        bool
	LogLevel      string
	LogFormat     string
}

// RegisterFlags adds every configuration flag to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyQuery, "q", "", `query to run, e.g. 'PROJECT name FILTER age > 30'`)
	fs.String(KeyFile, "", "data file or glob pattern (alternative to the positional argument)")
	fs.StringP(KeyFormat, "f", "table", "output format: table, csv, jsonl")
	fs.Int(KeyLimit, 0, "maximum number of rows to print (0 = unlimited)")
	fs.String(KeyDelimiter, ",", "CSV field delimiter")
	fs.Bool(KeyRawStrings, false, "keep every CSV field as a string")
	fs.Bool(KeySkipMalformed, false, "skip malformed CSV rows instead of failing")
	fs.Bool(KeySchema, false, "show schema information instead of data")
	fs.String(KeyLogLevel, "warn", "log level: debug, info, warn, error")
	fs.String(KeyLogFormat, "text", "log format: text, json")
}

// LoadEnvFiles loads .env.local and .env from dir into the process
// environment. Variables already set are never overridden, and .env.local
// wins over .env. Missing files are ignored.
func LoadEnvFiles(dir string) error {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Load resolves the configuration from flags, environment and defaults,
// in that order of precedence. args are the positional arguments; the
// first one, if any, is the data file.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	v := viper.New()

	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if len(args) > 0 {
		v.Set(KeyFile, args[0])
	}

	cfg := &Config{
		Query:         v.GetString(KeyQuery),
		FilePath:      v.GetString(KeyFile),
		Format:        v.GetString(KeyFormat),
		Limit:         v.GetInt(KeyLimit),
		RawStrings:    v.GetBool(KeyRawStrings),
		SkipMalformed: v.GetBool(KeySkipMalformed),
		Schema:        v.GetBool(KeySchema),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
	}

	delim, err := parseDelimiter(v.GetString(KeyDelimiter))
	if err != nil {
		return nil, err
	}
	cfg.Delimiter = delim

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings and flag combinations
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", c.Limit)
	}
	if c.Schema && c.Query != "" {
		return errors.New("--schema and a query cannot be used together")
	}
	if !c.Schema && c.Query == "" {
		return ErrMissingQuery
	}
	if c.FilePath == "" {
		return ErrMissingFile
	}
	return nil
}

// parseDelimiter accepts a single character or the escape `\t`
func parseDelimiter(s string) (rune, error) {
	if s == "" {
		return ',', nil
	}
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", s)
	}
	return r, nil
}
