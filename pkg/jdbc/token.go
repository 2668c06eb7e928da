package jdbc

import "github.com/leapstack-labs/connstring/pkg/core"

// TokenKind identifies the kind of a lexical token.
type TokenKind int

// TokenKind constants for the JDBC dialect.
const (
	TokenColon        TokenKind = iota // :
	TokenEquals                        // =
	TokenBackslash                     // \
	TokenForwardSlash                  // /
	TokenSemicolon                     // ;
	TokenAtom                          // one alphanumeric or whitespace character
	TokenEscaped                       // resolved content of a `{...}` run
	TokenEOF                           // end of input
)

func (k TokenKind) String() string {
	switch k {
	case TokenColon:
		return "COLON"
	case TokenEquals:
		return "EQUALS"
	case TokenBackslash:
		return "BACKSLASH"
	case TokenForwardSlash:
		return "FORWARD_SLASH"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenAtom:
		return "ATOM"
	case TokenEscaped:
		return "ESCAPED"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token is an immutable kind/location pair. Text carries the single
// character of an Atom or the resolved content of an Escaped run.
type Token struct {
	Kind TokenKind
	Text string
	Loc  core.Location
}
