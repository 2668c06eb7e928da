// Package format renders connection-string models back to text.
//
// Both dialects escape reserved characters the same way, so the escaping
// routine lives here rather than in either dialect package.
package format

import "strings"

// reserved reports whether ch has structural meaning in either dialect and
// must therefore be escaped on output.
func reserved(ch byte) bool {
	switch ch {
	case ':', '=', '\\', '/', ';', '{', '}', '[', ']':
		return true
	}
	return false
}

// Escape wraps every maximal run of reserved characters in s in a single
// `{...}` pair and emits all other characters verbatim. A run still open at
// the end of the string is closed before returning.
//
// The output always re-parses to s, but is not guaranteed to be
// byte-identical to whatever escaping the input originally used: values
// read from quote-delimited runs are re-encoded with braces.
func Escape(s string) string {
	var out strings.Builder
	open := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case reserved(ch) && !open:
			out.WriteByte('{')
			out.WriteByte(ch)
			open = true
		case reserved(ch):
			out.WriteByte(ch)
		case open:
			out.WriteByte('}')
			out.WriteByte(ch)
			open = false
		default:
			out.WriteByte(ch)
		}
	}
	if open {
		out.WriteByte('}')
	}
	return out.String()
}
