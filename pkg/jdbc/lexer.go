package jdbc

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/connstring/pkg/core"
)

// Lexer holds the token stream produced from a complete input string.
// JDBC strings support `{...}` escaping, so structural characters cannot
// be found by splitting; the input is tokenized first and the parser
// consumes tokens with one-token backtracking.
type Lexer struct {
	tokens []Token
	pos    int
	end    core.Location // column one past the final input character
}

// Tokenize scans input into a token stream in a single left-to-right pass.
// `{...}` is the only escape form in this dialect; its content is resolved
// into a single Escaped token here. ASCII alphanumerics and whitespace are
// atoms; any other unclassified character is an error.
func Tokenize(input string) (*Lexer, error) {
	var tokens []Token
	var loc core.Location
	for i := 0; i < len(input); {
		start := loc
		var tok Token
		switch ch := input[i]; {
		case ch == '{':
			text, n, err := scanBraced(input[i:])
			if err != nil {
				return nil, err
			}
			tok = Token{Kind: TokenEscaped, Text: text, Loc: start}
			i += n
			loc.Advance(n)
		case ch >= utf8.RuneSelf:
			r, _ := utf8.DecodeRuneInString(input[i:])
			return nil, core.Errorf("Invalid JDBC token `%c`", r)
		default:
			kind := TokenAtom
			text := ""
			switch {
			case ch == ':':
				kind = TokenColon
			case ch == '=':
				kind = TokenEquals
			case ch == '\\':
				kind = TokenBackslash
			case ch == '/':
				kind = TokenForwardSlash
			case ch == ';':
				kind = TokenSemicolon
			case isAlphanumeric(ch) || isWhitespace(ch):
				text = string(ch)
			default:
				return nil, core.Errorf("Invalid JDBC token `%c`", ch)
			}
			tok = Token{Kind: kind, Text: text, Loc: start}
			i++
			loc.Advance(1)
		}
		tokens = append(tokens, tok)
	}
	return &Lexer{tokens: tokens, end: loc}, nil
}

// scanBraced consumes a `{...}` run from the front of s and returns its
// verbatim content and the number of input bytes consumed. The run is
// closed by the first `}`; there is no doubling rule inside braces.
func scanBraced(s string) (string, int, error) {
	var buf strings.Builder
	for i := 1; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '}':
			return buf.String(), i + 1, nil
		case ch >= utf8.RuneSelf:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return "", 0, core.Errorf("Invalid JDBC token `%c`", r)
		default:
			buf.WriteByte(ch)
		}
	}
	return "", 0, core.NewError(core.ErrUnclosedEscape)
}

func isAlphanumeric(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// Next pops and returns the next token, or an EOF token once the stream is
// exhausted.
func (l *Lexer) Next() Token {
	if l.pos >= len(l.tokens) {
		return l.eof()
	}
	tok := l.tokens[l.pos]
	l.pos++
	return tok
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.pos >= len(l.tokens) {
		return l.eof()
	}
	return l.tokens[l.pos]
}

// Unread steps the cursor back one token, making the last token returned
// by Next available again.
func (l *Lexer) Unread() {
	if l.pos > 0 {
		l.pos--
	}
}

func (l *Lexer) eof() Token {
	return Token{Kind: TokenEOF, Loc: l.end}
}
