package query

import (
	"testing"
	"unicode"
)

func TestLexer_Trim(t *testing.T) {
	l := NewLexer("  \n PROJECT a \t ")
	if l.input != "PROJECT a" {
		t.Errorf("NewLexer() input = %q, want %q", l.input, "PROJECT a")
	}
}

func TestLexer_ConsumeKeyword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		keyword string
		want    bool
		wantPos int
	}{
		{"present", "PROJECT a", "PROJECT", true, 7},
		{"after white space", "a   FILTER", "FILTER", false, 0},
		{"case-sensitive", "project a", "PROJECT", false, 0},
		{"prefix of longer word", "ANDREW", "AND", true, 3},
		{"empty input", "", "PROJECT", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			if got := l.consumeKeyword(tt.keyword); got != tt.want {
				t.Errorf("consumeKeyword(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
			if l.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", l.Pos(), tt.wantPos)
			}
		})
	}
}

func TestLexer_ReadUntil(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"col1 rest", "col1"},
		{"col1,col2", "col1"},
		{"col1=3", "col1"},
		{"a>b c", "a>b"},
		{"名前 x", "名前"},
		{"end", "end"},
		{",", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			if got := l.readUntil(isIdentifierEnd); got != tt.want {
				t.Errorf("readUntil() = %q, want %q", got, tt.want)
			}
			if l.Pos() != len(tt.want) {
				t.Errorf("Pos() = %d, want %d", l.Pos(), len(tt.want))
			}
		})
	}
}

func TestLexer_ReadQuoted(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       string
		wantClosed bool
	}{
		{"simple", `"abc" rest`, "abc", true},
		{"keeps delimiters", `"a b, = c"`, "a b, = c", true},
		{"no escapes", `"a\"b"`, `a\`, true},
		{"empty", `""`, "", true},
		{"unterminated", `"abc`, "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			if !l.consumeChar(quote) {
				t.Fatal("consumeChar() did not find opening quote")
			}
			got, closed := l.readQuoted()
			if got != tt.want || closed != tt.wantClosed {
				t.Errorf("readQuoted() = %q, %v, want %q, %v", got, closed, tt.want, tt.wantClosed)
			}
		})
	}
}

func TestLexer_SkipWhitespace(t *testing.T) {
	l := NewLexer("a \t   b")
	l.readUntil(unicode.IsSpace)
	l.skipWhitespace()
	if ch, _ := l.peekChar(); ch != 'b' {
		t.Errorf("peekChar() after skipWhitespace = %q, want 'b'", ch)
	}
}
