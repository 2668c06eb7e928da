package ado

import (
	"strings"

	"github.com/leapstack-labs/connstring/pkg/core"
)

// parse consumes the token stream as `[pair][;pair]*[;]?` where
// `pair := key "=" value`. Keys are lowercased before insertion and a later
// duplicate overwrites the earlier value.
func parse(lexer *Lexer) (map[string]string, error) {
	pairs := make(map[string]string)
	for n := 0; ; n++ {
		// [property=[value][;property=value][;]]
		//                                       ^
		if lexer.Peek().Kind == TokenEOF {
			break
		}

		// [property=[value][;property=value][;]]
		//                   ^
		if n != 0 {
			if lexer.Next().Kind != TokenSemicolon {
				return nil, core.NewError("Key-value pairs must be separated by a `;`")
			}
			// A trailing `;` before end of input is fine.
			if lexer.Peek().Kind == TokenEOF {
				break
			}
		}

		// [property=[value][;property=value][;]]
		//  ^^^^^^^^
		key := readIdent(lexer)
		if key == "" {
			return nil, core.NewError(core.ErrEmptyKey)
		}

		// [property=[value][;property=value][;]]
		//          ^
		if lexer.Next().Kind != TokenEquals {
			return nil, core.NewError("key-value pairs must be joined by a `=`")
		}

		// [property=[value][;property=value][;]]
		//           ^^^^^
		value := readIdent(lexer)

		pairs[strings.ToLower(key)] = value
	}
	return pairs, nil
}

// readIdent reads either a key or a value from the stream. Atom and
// Escaped tokens are appended to the output; leading whitespace is
// dropped, interior whitespace runs collapse to a single space, and
// trailing whitespace is trimmed. The reader stops, without consuming, at
// a semicolon, an equals sign or the end of input. Values may be empty.
func readIdent(lexer *Lexer) string {
	var out strings.Builder
	pending := false // a whitespace run is waiting to be flushed
	for {
		tok := lexer.Peek()
		switch tok.Kind {
		case TokenAtom, TokenEscaped:
			lexer.Next()
			if pending && out.Len() > 0 {
				out.WriteByte(' ')
			}
			pending = false
			out.WriteString(tok.Text)
		case TokenNewline:
			// Interior newlines are dropped. Historical behavior,
			// unverified against the reference vendor grammar.
			lexer.Next()
		case TokenWhitespace:
			lexer.Next()
			pending = true
		default: // Semicolon, Equals, EOF
			return strings.TrimRight(out.String(), " ")
		}
	}
}
