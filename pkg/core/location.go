package core

// Location tracks where a token starts inside the input string, as a
// monotonically increasing character-column counter. It is attached to
// every token but not yet surfaced in error messages.
type Location struct {
	Column int // 0-based character column
}

// Advance moves the location forward by n consumed input characters.
func (l *Location) Advance(n int) {
	l.Column += n
}
