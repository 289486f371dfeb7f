package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const quote = '"'

// Lexer is a cursor over the query text. It does not produce tokens; the
// parser pulls identifiers, operators and values from it directly.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a lexer over the trimmed input
func NewLexer(input string) *Lexer {
	return &Lexer{input: strings.TrimSpace(input)}
}

// Pos returns the current byte offset
func (l *Lexer) Pos() int { return l.pos }

// done reports whether the whole input has been consumed
func (l *Lexer) done() bool { return l.pos >= len(l.input) }

// peekChar returns the character at the cursor without advancing
func (l *Lexer) peekChar() (rune, int) {
	if l.done() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.done() {
		ch, size := l.peekChar()
		if !unicode.IsSpace(ch) {
			return
		}
		l.pos += size
	}
}

// hasPrefix reports whether the unread input starts with s
func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.input[l.pos:], s)
}

// consumeKeyword skips whitespace and advances past keyword if it is next.
// Keywords are matched by prefix and are case-sensitive.
func (l *Lexer) consumeKeyword(keyword string) bool {
	l.skipWhitespace()
	if l.hasPrefix(keyword) {
		l.pos += len(keyword)
		return true
	}
	return false
}

// consumeChar advances past ch if it is next
func (l *Lexer) consumeChar(ch byte) bool {
	if !l.done() && l.input[l.pos] == ch {
		l.pos++
		return true
	}
	return false
}

// readUntil reads characters up to, not including, the first one for which
// stop returns true, or up to the end of input
func (l *Lexer) readUntil(stop func(rune) bool) string {
	start := l.pos
	for !l.done() {
		ch, size := l.peekChar()
		if stop(ch) {
			break
		}
		l.pos += size
	}
	return l.input[start:l.pos]
}

// readQuoted reads the text after an opening quote up to the closing quote.
// The content is taken verbatim: there are no escape sequences. closed is
// false when the input ends first.
func (l *Lexer) readQuoted() (text string, closed bool) {
	text = l.readUntil(func(ch rune) bool { return ch == quote })
	return text, l.consumeChar(quote)
}

// isIdentifierEnd reports whether ch ends a bare identifier
func isIdentifierEnd(ch rune) bool {
	return unicode.IsSpace(ch) || ch == ',' || ch == '='
}
