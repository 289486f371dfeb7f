package query

import "unicode"

// Keywords of the query language. They are case-sensitive.
const (
	keywordProject = "PROJECT"
	keywordFilter  = "FILTER"
	keywordAnd     = "AND"
)

// Parser parses query text into a Query
type Parser struct {
	lexer *Lexer
}

// NewParser creates a new parser over input
func NewParser(input string) *Parser {
	return &Parser{lexer: NewLexer(input)}
}

// Parse parses a query of the form
//
//	PROJECT col1, "col 2" FILTER col1 = 10 AND "col 2" < "b"
//
// It returns a *ParseError describing the first problem found; no partial
// Query is returned on failure.
func Parse(query string) (*Query, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, &ParseError{Kind: SyntaxLimit, Pos: MaxQueryLength, Msg: err.Error(), Err: ErrQueryTooLong}
	}
	return NewParser(query).Parse()
}

// Parse runs the parser once over its input
func (p *Parser) Parse() (*Query, error) {
	l := p.lexer

	if !l.consumeKeyword(keywordProject) {
		return nil, newParseError(SyntaxKeyword, l.Pos(), ErrMissingKeyword, "Query must start with PROJECT keyword")
	}

	projections, err := p.parseProjections()
	if err != nil {
		return nil, err
	}
	if len(projections) == 0 {
		return nil, newParseError(SyntaxColumn, l.Pos(), ErrMissingColumn, "At least one column must be specified")
	}

	var filters []FilterCondition
	if l.consumeKeyword(keywordFilter) {
		filters, err = p.parseFilters()
		if err != nil {
			return nil, err
		}
		if len(filters) == 0 {
			return nil, newParseError(SyntaxCondition, l.Pos(), ErrMissingCondition, "At least one condition must be specified")
		}
	}

	l.skipWhitespace()
	if !l.done() {
		return nil, newParseError(SyntaxUnexpected, l.Pos(), ErrUnexpectedInput, "Unexpected input %q found in query", l.input[l.pos:])
	}

	return newQuery(projections, filters), nil
}

// parseProjections parses: column ("," column)*
func (p *Parser) parseProjections() ([]string, error) {
	l := p.lexer
	l.skipWhitespace()

	var projections []string
	for !l.done() {
		if l.hasPrefix(keywordFilter) {
			break
		}

		column, err := p.parseColumnName()
		if err != nil {
			return nil, err
		}
		projections = append(projections, column)

		l.skipWhitespace()
		if l.consumeChar(',') {
			continue
		}
		break
	}

	return projections, nil
}

// parseFilters parses: condition ("AND" condition)*
func (p *Parser) parseFilters() ([]FilterCondition, error) {
	l := p.lexer

	var filters []FilterCondition
	for !l.done() {
		column, err := p.parseColumnName()
		if err != nil {
			return nil, err
		}
		operator, err := p.parseOperator()
		if err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		filters = append(filters, FilterCondition{
			Column:   column,
			Operator: operator,
			Value:    value,
		})

		l.skipWhitespace()
		if !l.done() && l.consumeKeyword(keywordAnd) {
			continue
		}
		break
	}

	return filters, nil
}

// parseColumnName reads a quoted or bare identifier. A bare identifier ends
// at whitespace, a comma or '='.
func (p *Parser) parseColumnName() (string, error) {
	l := p.lexer
	l.skipWhitespace()

	start := l.Pos()
	var identifier string
	if l.consumeChar(quote) {
		text, closed := l.readQuoted()
		if text == "" {
			return "", newParseError(SyntaxColumn, l.Pos(), ErrMissingColumn, "Invalid column name")
		}
		if !closed {
			return "", newParseError(SyntaxColumn, start, ErrMissingColumn, "Unterminated quoted column name")
		}
		identifier = text
	} else {
		identifier = l.readUntil(isIdentifierEnd)
		if identifier == "" {
			return "", newParseError(SyntaxColumn, l.Pos(), ErrMissingColumn, "Invalid column name")
		}
	}

	if err := ValidateColumnName(identifier); err != nil {
		return "", &ParseError{Kind: SyntaxLimit, Pos: start, Msg: err.Error(), Err: ErrColumnNameTooLong}
	}

	l.skipWhitespace()
	return identifier, nil
}

// parseOperator reads one of =, > or <
func (p *Parser) parseOperator() (Operator, error) {
	l := p.lexer
	l.skipWhitespace()

	ch, _ := l.peekChar()
	switch op := Operator(string(ch)); op {
	case OpEqual, OpGreater, OpLess:
		l.pos++
		return op, nil
	default:
		return "", newParseError(SyntaxOperator, l.Pos(), ErrMissingOperator, "Invalid filter operator")
	}
}

// parseValue reads a quoted string or an unquoted integer literal.
// Unquoted text that is not an integer is kept as a not-a-number value.
func (p *Parser) parseValue() (Value, error) {
	l := p.lexer
	l.skipWhitespace()

	if l.done() {
		return Value{}, newParseError(SyntaxValue, l.Pos(), ErrMissingValue, "Missing filter value")
	}

	start := l.Pos()
	if l.consumeChar(quote) {
		text, closed := l.readQuoted()
		if !closed {
			return Value{}, newParseError(SyntaxValue, start, ErrMissingValue, "Unterminated string value")
		}
		return StringValue(text), nil
	}

	raw := l.readUntil(unicode.IsSpace)
	return parseIntegerValue(raw), nil
}
