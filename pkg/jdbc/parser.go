package jdbc

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/connstring/pkg/core"
)

const errSubProtocol = "Invalid JDBC sub-protocol"

// parse consumes the token stream as
//
//	jdbc:<suffix>://[serverName[\instanceName][:portNumber]][;property=value]*[;]
//
// Every step is mandatory in order; optional segments are detected by
// peeking at their leading token. Any token left over at the end is an
// error.
func parse(lexer *Lexer) (*ConnString, error) {
	// jdbc:<suffix>://
	// ^^^^^
	if err := matchAtoms(lexer, "jdbc", errSubProtocol); err != nil {
		return nil, err
	}
	if lexer.Next().Kind != TokenColon {
		return nil, core.NewError(errSubProtocol)
	}

	// jdbc:<suffix>://
	//      ^^^^^^^^
	suffix, err := readIdent(lexer, errSubProtocol)
	if err != nil {
		return nil, err
	}

	// jdbc:<suffix>://
	//              ^^^
	if lexer.Next().Kind != TokenColon {
		return nil, core.NewError(errSubProtocol)
	}
	if lexer.Next().Kind != TokenForwardSlash {
		return nil, core.NewError(errSubProtocol)
	}
	if lexer.Next().Kind != TokenForwardSlash {
		return nil, core.NewError(errSubProtocol)
	}

	c := &ConnString{
		subProtocol: "jdbc:" + suffix,
		properties:  make(map[string]string),
	}

	// [serverName]
	if k := lexer.Peek().Kind; k == TokenAtom || k == TokenEscaped {
		c.serverName, err = readIdent(lexer, "Invalid server name")
		if err != nil {
			return nil, err
		}
		c.hasServer = true
	}

	// [\instanceName]
	if lexer.Peek().Kind == TokenBackslash {
		lexer.Next()
		c.instanceName, err = readIdent(lexer, "Invalid instance name")
		if err != nil {
			return nil, err
		}
		c.hasInstance = true
	}

	// [:portNumber]
	if lexer.Peek().Kind == TokenColon {
		lexer.Next()
		digits, err := readIdent(lexer, "Invalid port")
		if err != nil {
			return nil, err
		}
		port, err := strconv.ParseUint(digits, 10, 16)
		if err != nil {
			return nil, core.NewError("Invalid port")
		}
		c.port = uint16(port)
		c.hasPort = true
	}

	// [;property=value]*[;]
	// Only the last value per key is kept.
	for lexer.Peek().Kind == TokenSemicolon {
		lexer.Next()
		if lexer.Peek().Kind == TokenEOF {
			break
		}

		key, err := readIdent(lexer, "Invalid property key")
		if err != nil {
			return nil, err
		}
		if lexer.Next().Kind != TokenEquals {
			return nil, core.NewError("Property pairs must be joined by a `=`")
		}
		value, err := readIdent(lexer, "Invalid property value")
		if err != nil {
			return nil, err
		}

		c.properties[strings.ToLower(key)] = value
	}

	if lexer.Next().Kind != TokenEOF {
		return nil, core.NewError("Invalid JDBC token")
	}
	return c, nil
}

// matchAtoms requires the next tokens to be the atoms spelling s.
func matchAtoms(lexer *Lexer, s string, errMsg string) error {
	for i := 0; i < len(s); i++ {
		tok := lexer.Next()
		if tok.Kind != TokenAtom || tok.Text != s[i:i+1] {
			return core.NewError(errMsg)
		}
	}
	return nil
}

// readIdent reads a sequence of Atom and Escaped tokens into a string,
// stopping (without consuming) at the first structural token. Escaped runs
// contribute their resolved content without the brace delimiters; String
// re-encodes reserved characters on output. An empty result is an error
// with the caller's message.
func readIdent(lexer *Lexer, errMsg string) (string, error) {
	var out strings.Builder
	for {
		tok := lexer.Next()
		switch tok.Kind {
		case TokenAtom, TokenEscaped:
			out.WriteString(tok.Text)
		default:
			lexer.Unread()
			if out.Len() == 0 {
				return "", core.NewError(errMsg)
			}
			return out.String(), nil
		}
	}
}
