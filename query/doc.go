// Package query parses PROJECT/FILTER queries and applies them to rows.
//
// A query selects columns and optionally restricts rows:
//
//	PROJECT name, "home town" FILTER age > 30 AND name = "alice"
//
// # Basic Usage
//
// Parse once, then match and project each row:
//
//	q, err := query.Parse(`PROJECT name FILTER age > 30`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range rows {
//	    if query.Match(q, row) {
//	        fmt.Println(query.Project(q, row))
//	    }
//	}
//
// Or stream rows from any RowSource into a RowSink:
//
//	stats, err := query.Execute(ctx, q, src, sink, query.ExecuteOptions{})
//
// # Grammar
//
//	query       := "PROJECT" projections ("FILTER" filters)?
//	projections := column ("," column)*
//	filters     := condition ("AND" condition)*
//	condition   := column operator value
//	operator    := "=" | ">" | "<"
//
// Keywords are case-sensitive. A bare column name runs until whitespace, a
// comma or '='. A double-quoted column name or value is taken verbatim up to
// the next double quote; there are no escape sequences. Unquoted values are
// base-10 integers; integers too large for int64 are compared by their
// approximate magnitude. Unquoted text that is not an integer is accepted but
// never satisfies a condition: decimals such as 1.5 and text such as 5abc are
// not truncated to an integer. A double-quoted column name must be closed;
// `PROJECT "abc` is an error.
//
// # Comparison Semantics
//
//   - A row without the filtered column never matches.
//   - "=" requires the same type and value; "10" does not equal 10.
//   - ">" and "<" compare two strings lexicographically; every other
//     pairing is compared numerically after reading strings as numbers.
//     A string that is not a number makes the comparison false.
//
// # Error Handling
//
// Parse returns a *ParseError carrying the byte offset of the failure. It
// unwraps to one of ErrMissingKeyword, ErrMissingColumn, ErrMissingCondition,
// ErrMissingOperator, ErrMissingValue or ErrUnexpectedInput, so callers can
// use errors.Is. Match and Project never fail.
package query
