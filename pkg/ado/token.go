package ado

import "github.com/leapstack-labs/connstring/pkg/core"

// TokenKind identifies the kind of a lexical token.
type TokenKind int

// TokenKind constants for the ADO.net dialect.
const (
	TokenSemicolon  TokenKind = iota // ;
	TokenEquals                      // =
	TokenAtom                        // one raw character of an unquoted run
	TokenEscaped                     // resolved content of a quoted or braced run
	TokenNewline                     // \n
	TokenWhitespace                  // ' '
	TokenEOF                         // end of input
)

func (k TokenKind) String() string {
	switch k {
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenEquals:
		return "EQUALS"
	case TokenAtom:
		return "ATOM"
	case TokenEscaped:
		return "ESCAPED"
	case TokenNewline:
		return "NEWLINE"
	case TokenWhitespace:
		return "WHITESPACE"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token is an immutable kind/location pair. Text carries the single
// character of an Atom or the resolved content of an Escaped run; it is
// empty for structural kinds.
type Token struct {
	Kind TokenKind
	Text string
	Loc  core.Location
}
