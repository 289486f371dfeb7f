package query

import (
	"errors"
	"fmt"
	"strconv"
)

// Row is one record of input data keyed by column name. Values are strings
// or numbers; the core never mutates a row.
type Row = map[string]interface{}

// Operator is a filter comparison operator
type Operator string

const (
	OpEqual   Operator = "="
	OpGreater Operator = ">"
	OpLess    Operator = "<"
)

// Valid reports whether op is one of the supported operators
func (op Operator) Valid() bool {
	switch op {
	case OpEqual, OpGreater, OpLess:
		return true
	default:
		return false
	}
}

// ValueKind tags the variant held by a Value
type ValueKind int

const (
	// KindInteger is an unquoted value. A KindInteger value whose text was
	// not a base-10 integer is "not a number" and never satisfies a condition.
	KindInteger ValueKind = iota
	// KindString is a quoted value, taken verbatim.
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is the right-hand side of a filter condition: either an integer or a
// string, never both. Its kind is fixed when it is created.
type Value struct {
	kind   ValueKind
	num    int64
	nan    bool
	wide   float64 // integer literals outside the int64 range
	isWide bool
	text   string
}

// IntegerValue returns an integer filter value
func IntegerValue(n int64) Value {
	return Value{kind: KindInteger, num: n, text: strconv.FormatInt(n, 10)}
}

// StringValue returns a string filter value
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// parseIntegerValue converts unquoted value text. Text that is not a base-10
// integer still produces an integer-kind value, flagged as not a number.
// Integers too large for int64 keep their approximate float64 magnitude.
func parseIntegerValue(raw string) Value {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return Value{kind: KindInteger, num: n, text: raw}
	}
	if errors.Is(err, strconv.ErrRange) {
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			return Value{kind: KindInteger, wide: f, isWide: true, text: raw}
		}
	}
	return Value{kind: KindInteger, nan: true, text: raw}
}

// Kind returns the variant of v
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer held by v. ok is false for strings, for unquoted
// text that did not parse as an integer and for integers outside the int64
// range.
func (v Value) Int() (n int64, ok bool) {
	if v.kind != KindInteger || v.nan || v.isWide {
		return 0, false
	}
	return v.num, true
}

// Float returns the numeric value of an integer-kind v, including integers
// outside the int64 range
func (v Value) Float() (f float64, ok bool) {
	switch {
	case v.kind != KindInteger || v.nan:
		return 0, false
	case v.isWide:
		return v.wide, true
	default:
		return float64(v.num), true
	}
}

// Str returns the string held by v
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// IsNaN reports whether v is unquoted text that failed integer parsing
func (v Value) IsNaN() bool { return v.kind == KindInteger && v.nan }

// Interface returns v as a plain Go value: int64, string, float64 for
// integers outside the int64 range, or math.NaN()
func (v Value) Interface() interface{} {
	switch {
	case v.kind == KindString:
		return v.text
	case v.nan:
		return nan
	case v.isWide:
		return v.wide
	default:
		return v.num
	}
}

// String renders v the way it is written in a query
func (v Value) String() string {
	if v.kind == KindString {
		return `"` + v.text + `"`
	}
	if v.nan || v.isWide {
		return v.text
	}
	return strconv.FormatInt(v.num, 10)
}

// Equal reports whether two values have the same kind and content
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.nan != o.nan || v.isWide != o.isWide {
		return false
	}
	if v.kind == KindString || v.nan || v.isWide {
		return v.text == o.text
	}
	return v.num == o.num
}

// FilterCondition is a (column, operator, value) triple a row must satisfy
type FilterCondition struct {
	Column   string
	Operator Operator
	Value    Value
}

func (c FilterCondition) String() string {
	return quoteIdentifier(c.Column, false) + " " + string(c.Operator) + " " + c.Value.String()
}

// Query is the parsed form of a PROJECT/FILTER request. It is immutable and
// safe for concurrent use by multiple goroutines.
type Query struct {
	projections []string
	filters     []FilterCondition
}

// NewQuery builds a Query from already-separated parts
func NewQuery(projections []string, filters []FilterCondition) (*Query, error) {
	if len(projections) == 0 {
		return nil, ErrMissingColumn
	}
	for i, p := range projections {
		if p == "" {
			return nil, fmt.Errorf("%w: projection %d is empty", ErrMissingColumn, i)
		}
	}
	for i, f := range filters {
		if f.Column == "" {
			return nil, fmt.Errorf("%w: filter %d has no column", ErrMissingColumn, i)
		}
		if !f.Operator.Valid() {
			return nil, fmt.Errorf("%w: filter %d has operator %q", ErrMissingOperator, i, f.Operator)
		}
	}
	return newQuery(projections, filters), nil
}

func newQuery(projections []string, filters []FilterCondition) *Query {
	q := &Query{
		projections: append([]string(nil), projections...),
	}
	if len(filters) > 0 {
		q.filters = append([]FilterCondition(nil), filters...)
	}
	return q
}

// Projections returns the projected column names in source order,
// duplicates included
func (q *Query) Projections() []string {
	return append([]string(nil), q.projections...)
}

// Filters returns the filter conditions in source order
func (q *Query) Filters() []FilterCondition {
	return append([]FilterCondition(nil), q.filters...)
}

// Columns returns the projections with duplicates removed, keeping the
// position of each first occurrence
func (q *Query) Columns() []string {
	seen := make(map[string]bool, len(q.projections))
	columns := make([]string, 0, len(q.projections))
	for _, p := range q.projections {
		if !seen[p] {
			seen[p] = true
			columns = append(columns, p)
		}
	}
	return columns
}
