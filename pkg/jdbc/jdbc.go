// Package jdbc parses JDBC connection strings.
//
// The format is URL-like, with `{...}` escaping for reserved characters:
//
//	jdbc:sqlserver://[serverName[\instanceName][:portNumber]][;property=value]*
//
//	cs, err := jdbc.Parse(`jdbc:sqlserver://server\instance:1433;user=sa`)
//
// https://docs.microsoft.com/en-us/sql/connect/jdbc/building-the-connection-url
package jdbc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/connstring/pkg/format"
)

// ConnString is a parsed JDBC connection string. The sub-protocol always
// carries the `jdbc:` prefix; server, instance and port are optional.
// Property keys are lowercased; parsing keeps the last value seen for a
// duplicate key.
type ConnString struct {
	subProtocol  string
	serverName   string
	hasServer    bool
	instanceName string
	hasInstance  bool
	port         uint16
	hasPort      bool
	properties   map[string]string
}

// Parse parses input into a ConnString. Inputs that do not already start
// with "jdbc" get the "jdbc:" scheme prepended first, so "sqlserver://h"
// is accepted. On failure no partial result is returned.
func Parse(input string) (*ConnString, error) {
	if !strings.HasPrefix(input, "jdbc") {
		input = "jdbc:" + input
	}
	lexer, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return parse(lexer)
}

// SubProtocol returns the connection sub-protocol, including the `jdbc:`
// prefix.
func (c *ConnString) SubProtocol() string {
	return c.subProtocol
}

// ServerName returns the server name, if present.
func (c *ConnString) ServerName() (string, bool) {
	return c.serverName, c.hasServer
}

// InstanceName returns the instance name, if present.
func (c *ConnString) InstanceName() (string, bool) {
	return c.instanceName, c.hasInstance
}

// Port returns the port, if present.
func (c *ConnString) Port() (uint16, bool) {
	return c.port, c.hasPort
}

// Properties returns the underlying property map for direct mutation. The
// ConnString offers no synchronization; concurrent mutators need external
// locking.
func (c *ConnString) Properties() map[string]string {
	return c.properties
}

// Get returns the property value for key. The lookup is case-insensitive.
func (c *ConnString) Get(key string) (string, bool) {
	v, ok := c.properties[strings.ToLower(key)]
	return v, ok
}

// Set stores value under key (case-folded) and returns the previous value,
// if any. No validation is performed; callers inserting reserved
// characters rely on String re-escaping them.
func (c *ConnString) Set(key, value string) (string, bool) {
	k := strings.ToLower(key)
	old, ok := c.properties[k]
	c.properties[k] = value
	return old, ok
}

// Keys returns all property keys in sorted order.
func (c *ConnString) Keys() []string {
	keys := make([]string, 0, len(c.properties))
	for k := range c.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the connection string back to text, re-escaping reserved
// characters with braces. Properties are emitted in sorted key order so
// the output is deterministic.
func (c *ConnString) String() string {
	var out strings.Builder
	out.WriteString(c.subProtocol)
	out.WriteString("://")
	if c.hasServer {
		out.WriteString(format.Escape(c.serverName))
	}
	if c.hasInstance {
		out.WriteByte('\\')
		out.WriteString(format.Escape(c.instanceName))
	}
	if c.hasPort {
		out.WriteByte(':')
		out.WriteString(strconv.Itoa(int(c.port)))
	}
	for _, k := range c.Keys() {
		out.WriteByte(';')
		out.WriteString(format.Escape(strings.TrimSpace(k)))
		out.WriteByte('=')
		out.WriteString(format.Escape(strings.TrimSpace(c.properties[k])))
	}
	return out.String()
}
