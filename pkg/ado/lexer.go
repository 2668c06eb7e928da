package ado

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/connstring/pkg/core"
)

// Lexer holds the token stream produced from a complete input string.
// Splitting on `;` is not enough for this format: quoted and braced runs
// may contain structural characters, so the input is tokenized first and
// the parser consumes tokens with one-token backtracking.
type Lexer struct {
	tokens []Token
	pos    int
	end    core.Location // column one past the final input character
}

// Tokenize scans input into a token stream in a single left-to-right pass.
// Quoted and braced runs are resolved into single Escaped tokens here, so
// the parser never sees their delimiters.
func Tokenize(input string) (*Lexer, error) {
	var tokens []Token
	var loc core.Location
	for i := 0; i < len(input); {
		start := loc
		var tok Token
		switch ch := input[i]; {
		case ch == '"' || ch == '\'':
			text, n, err := scanQuoted(input[i:], ch)
			if err != nil {
				return nil, err
			}
			tok = Token{Kind: TokenEscaped, Text: text, Loc: start}
			i += n
			loc.Advance(n)
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
			return nil, core.Errorf("Invalid character found: %c", r)
		default:
			kind := TokenAtom
			text := ""
			switch ch {
			case ';':
				kind = TokenSemicolon
			case '=':
				kind = TokenEquals
			case '\n':
				kind = TokenNewline
			case ' ':
				kind = TokenWhitespace
			default:
				text = string(ch)
			}
			tok = Token{Kind: kind, Text: text, Loc: start}
			i++
			loc.Advance(1)
		}
		tokens = append(tokens, tok)
	}
	return &Lexer{tokens: tokens, end: loc}, nil
}

// scanQuoted consumes a run delimited by quote from the front of s and
// returns its resolved content and the number of input bytes consumed.
// A doubled quote inside the run is an escape for one literal quote; the
// lookahead past the first quote decides between escape and close.
func scanQuoted(s string, quote byte) (string, int, error) {
	var buf strings.Builder
	for i := 1; i < len(s); {
		switch ch := s[i]; {
		case ch == quote:
			if i+1 < len(s) && s[i+1] == quote {
				buf.WriteByte(quote)
				i += 2
				continue
			}
			return buf.String(), i + 1, nil
		case ch >= utf8.RuneSelf:
			return "", 0, core.NewError("Invalid ado.net token")
		default:
			buf.WriteByte(ch)
			i++
		}
	}
	if quote == '\'' {
		return "", 0, core.NewError("unclosed single quote")
	}
	return "", 0, core.NewError("unclosed double quote")
}

// scanBraced consumes a `{...}` run from the front of s. There is no
// doubling rule inside braces: the run is closed by the first `}` and its
// content is taken verbatim.
func scanBraced(s string) (string, int, error) {
	var buf strings.Builder
	for i := 1; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '}':
			return buf.String(), i + 1, nil
		case ch >= utf8.RuneSelf:
			return "", 0, core.NewError("Invalid ado.net token")
		default:
			buf.WriteByte(ch)
		}
	}
	return "", 0, core.NewError(core.ErrUnclosedEscape)
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
// by Next available again. The stream only ever needs this single token of
// backtracking.
func (l *Lexer) Unread() {
	if l.pos > 0 {
		l.pos--
	}
}

func (l *Lexer) eof() Token {
	return Token{Kind: TokenEOF, Loc: l.end}
}
