package query

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var nan = math.NaN()

// Match reports whether row satisfies every filter condition of q. A query
// without filters matches every row. Conditions are evaluated in source
// order and evaluation stops at the first one that fails.
func Match(q *Query, row Row) bool {
	for _, filter := range q.filters {
		if !filter.Evaluate(row) {
			return false
		}
	}
	return true
}

// Evaluate evaluates the condition against a row. A row that lacks the
// column never satisfies the condition.
func (c FilterCondition) Evaluate(row Row) bool {
	value, exists := row[c.Column]
	if !exists {
		return false
	}

	return compare(value, c.Operator, c.Value)
}

// compare applies operator to a row value and a filter value
func compare(left interface{}, operator Operator, right Value) bool {
	switch operator {
	case OpEqual:
		return strictEqual(left, right)
	case OpGreater, OpLess:
		cmp, ok := order(left, right)
		if !ok {
			return false
		}
		if operator == OpGreater {
			return cmp > 0
		}
		return cmp < 0
	default:
		panic(fmt.Sprintf("query: unknown operator %q", operator))
	}
}

// strictEqual requires the same type and value: a string never equals a
// number, and a value that is not a number equals nothing
func strictEqual(left interface{}, right Value) bool {
	if s, ok := right.Str(); ok {
		leftStr, leftIsStr := toString(left)
		return leftIsStr && leftStr == s
	}

	n, ok := right.Float()
	if !ok {
		return false
	}
	leftNum, leftIsNum := toFloat64(left)
	return leftIsNum && leftNum == n
}

// order compares a row value with a filter value for < and >. Two strings
// compare lexicographically. Any other pairing is compared numerically after
// converting both sides with toNumber; ok is false when either side is not a
// number, since such comparisons are always false.
func order(left interface{}, right Value) (cmp int, ok bool) {
	if s, isStr := right.Str(); isStr {
		if leftStr, leftIsStr := toString(left); leftIsStr {
			return strings.Compare(leftStr, s), true
		}
	}

	l := toNumber(left)
	r := toNumber(right.Interface())
	if math.IsNaN(l) || math.IsNaN(r) {
		return 0, false
	}

	switch {
	case l < r:
		return -1, true
	case l > r:
		return 1, true
	default:
		return 0, true
	}
}

// toFloat64 converts a value to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// toString converts a value to string if possible
func toString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	default:
		return "", false
	}
}

// toNumber converts any row or filter value to a number for ordering.
// Strings are read as numeric literals, booleans as 1 and 0, nil as 0;
// everything that cannot be read as a number becomes NaN.
func toNumber(v interface{}) float64 {
	if n, ok := toFloat64(v); ok {
		return n
	}
	if s, ok := toString(v); ok {
		return stringToNumber(s)
	}
	switch val := v.(type) {
	case nil:
		return 0
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		return nan
	}
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// stringToNumber reads s as a numeric literal. Surrounding whitespace is
// ignored and the empty string reads as 0.
func stringToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.Contains(s, "_") {
				return nan
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return nan
			}
			return float64(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return nan
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nan
	}
	return f
}

// Unknown returns the columns referenced by q, in projection then filter
// order and without duplicates, that are not among columns
func (q *Query) Unknown(columns []string) []string {
	known := make(map[string]bool, len(columns))
	for _, c := range columns {
		known[c] = true
	}

	seen := make(map[string]bool)
	var unknown []string
	add := func(c string) {
		if !known[c] && !seen[c] {
			seen[c] = true
			unknown = append(unknown, c)
		}
	}
	for _, p := range q.projections {
		add(p)
	}
	for _, f := range q.filters {
		add(f.Column)
	}
	return unknown
}
