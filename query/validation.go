package query

import (
	"errors"
	"fmt"
)

// Validation limits applied while parsing
const (
	// MaxQueryLength is the maximum allowed query string length (1MB)
	MaxQueryLength = 1024 * 1024

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 4096
)

var (
	// ErrMissingKeyword is returned when a query does not start with PROJECT
	ErrMissingKeyword = errors.New("query must start with PROJECT keyword")

	// ErrMissingColumn is returned when no projection is given or a filter
	// condition has no column name
	ErrMissingColumn = errors.New("missing column name")

	// ErrMissingCondition is returned when FILTER is followed by no condition
	ErrMissingCondition = errors.New("at least one condition must be specified")

	// ErrMissingOperator is returned when a condition has no valid operator
	ErrMissingOperator = errors.New("invalid filter operator")

	// ErrMissingValue is returned when a condition has no value or its
	// quoted value is never closed
	ErrMissingValue = errors.New("missing filter value")

	// ErrUnexpectedInput is returned when text remains after a complete query
	ErrUnexpectedInput = errors.New("unexpected input")

	// ErrQueryTooLong is returned when query exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")
)

// ErrorKind names the grammar element a ParseError is about
type ErrorKind int

const (
	SyntaxKeyword ErrorKind = iota
	SyntaxColumn
	SyntaxCondition
	SyntaxOperator
	SyntaxValue
	SyntaxUnexpected
	SyntaxLimit
)

var errorKindNames = []string{"keyword", "column", "condition", "operator", "value", "unexpected", "limit"}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError describes why and where a query failed to parse
type ParseError struct {
	Kind ErrorKind
	Pos  int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(kind ErrorKind, pos int, sentinel error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind: kind,
		Pos:  pos,
		Msg:  fmt.Sprintf(format, args...),
		Err:  sentinel,
	}
}

// ValidateQuery checks the raw query text before scanning
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}
