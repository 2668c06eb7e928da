// Package ado parses ADO.net connection strings.
//
// The format is a `;`-separated list of `key=value` pairs. Reserved
// characters may be escaped by double or single quotes (with doubling for
// a literal quote) or by a `{...}` pair:
//
//	cs, err := ado.Parse(`Server=tcp:localhost,1433;Password="p;w"`)
//
// https://docs.microsoft.com/en-us/dotnet/framework/data/adonet/connection-string-syntax
package ado

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/connstring/pkg/format"
)

// ConnString is a parsed ADO.net connection string: a mapping from
// lowercased keys to values. Keys are unique; parsing keeps the last value
// seen for a duplicate key.
type ConnString struct {
	pairs map[string]string
}

// Parse parses input into a ConnString. On failure no partial result is
// returned.
func Parse(input string) (*ConnString, error) {
	lexer, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	pairs, err := parse(lexer)
	if err != nil {
		return nil, err
	}
	return &ConnString{pairs: pairs}, nil
}

// Get returns the value for key. The lookup is case-insensitive.
func (c *ConnString) Get(key string) (string, bool) {
	v, ok := c.pairs[strings.ToLower(key)]
	return v, ok
}

// Set stores value under key (case-folded) and returns the previous value,
// if any. No validation is performed; callers inserting reserved
// characters rely on String re-escaping them.
func (c *ConnString) Set(key, value string) (string, bool) {
	k := strings.ToLower(key)
	old, ok := c.pairs[k]
	c.pairs[k] = value
	return old, ok
}

// Keys returns all keys in sorted order.
func (c *ConnString) Keys() []string {
	keys := make([]string, 0, len(c.pairs))
	for k := range c.pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pairs returns the underlying key/value map for direct mutation. The
// ConnString offers no synchronization; concurrent mutators need external
// locking.
func (c *ConnString) Pairs() map[string]string {
	return c.pairs
}

// Len returns the number of pairs.
func (c *ConnString) Len() int {
	return len(c.pairs)
}

// String renders the pairs back to connection-string form, re-escaping
// reserved characters with braces. Pairs are emitted in sorted key order
// so the output is deterministic.
func (c *ConnString) String() string {
	var out strings.Builder
	for i, k := range c.Keys() {
		if i > 0 {
			out.WriteByte(';')
		}
		out.WriteString(format.Escape(strings.TrimSpace(k)))
		out.WriteByte('=')
		out.WriteString(format.Escape(strings.TrimSpace(c.pairs[k])))
	}
	return out.String()
}
