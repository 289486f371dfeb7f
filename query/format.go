package query

import "strings"

// String renders q as query text that parses back to the same projections
// and filters
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString(keywordProject)
	for i, p := range q.projections {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(quoteIdentifier(p, true))
	}

	for i, f := range q.filters {
		if i == 0 {
			b.WriteString(" " + keywordFilter + " ")
		} else {
			b.WriteString(" " + keywordAnd + " ")
		}
		b.WriteString(f.String())
	}

	return b.String()
}

// quoteIdentifier quotes name when it would not read back as a single bare
// identifier. Projections starting with FILTER are quoted as well, since the
// projection list stops at that keyword.
func quoteIdentifier(name string, projection bool) string {
	needsQuote := strings.HasPrefix(name, `"`) ||
		strings.IndexFunc(name, isIdentifierEnd) >= 0 ||
		(projection && strings.HasPrefix(name, keywordFilter))
	if !needsQuote {
		return name
	}
	return `"` + name + `"`
}
