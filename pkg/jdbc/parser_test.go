package jdbc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/connstring/pkg/jdbc"
)

func TestParseSubProtocol(t *testing.T) {
	cs, err := jdbc.Parse("jdbc:sqlserver://")
	require.NoError(t, err)

	assert.Equal(t, "jdbc:sqlserver", cs.SubProtocol())
	_, ok := cs.ServerName()
	assert.False(t, ok)
	_, ok = cs.InstanceName()
	assert.False(t, ok)
	_, ok = cs.Port()
	assert.False(t, ok)
	assert.Empty(t, cs.Properties())
}

func TestParseServerName(t *testing.T) {
	cs, err := jdbc.Parse("jdbc:sqlserver://server")
	require.NoError(t, err)

	server, ok := cs.ServerName()
	require.True(t, ok)
	assert.Equal(t, "server", server)
}

func TestParseInstanceName(t *testing.T) {
	cs, err := jdbc.Parse(`jdbc:sqlserver://server\instance`)
	require.NoError(t, err)

	instance, ok := cs.InstanceName()
	require.True(t, ok)
	assert.Equal(t, "instance", instance)
}

func TestParseInstanceWithoutServer(t *testing.T) {
	cs, err := jdbc.Parse(`jdbc:sqlserver://\instance:1433`)
	require.NoError(t, err)

	_, ok := cs.ServerName()
	assert.False(t, ok)
	instance, ok := cs.InstanceName()
	require.True(t, ok)
	assert.Equal(t, "instance", instance)
	port, ok := cs.Port()
	require.True(t, ok)
	assert.Equal(t, uint16(1433), port)
}

func TestParsePort(t *testing.T) {
	cs, err := jdbc.Parse(`jdbc:sqlserver://server\instance:80`)
	require.NoError(t, err)

	port, ok := cs.Port()
	require.True(t, ok)
	assert.Equal(t, uint16(80), port)
}

func TestParseProperties(t *testing.T) {
	cs, err := jdbc.Parse(`jdbc:sqlserver://server\instance:80;key=value;foo=bar`)
	require.NoError(t, err)

	assert.Equal(t, "jdbc:sqlserver", cs.SubProtocol())
	server, _ := cs.ServerName()
	assert.Equal(t, "server", server)
	instance, _ := cs.InstanceName()
	assert.Equal(t, "instance", instance)
	port, _ := cs.Port()
	assert.Equal(t, uint16(80), port)

	want := map[string]string{"key": "value", "foo": "bar"}
	if diff := cmp.Diff(want, cs.Properties()); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEscapedRunsAreDecoded(t *testing.T) {
	cs, err := jdbc.Parse(`jdbc:sqlserver://se{r}ver{;}\instance:80;key={va[]}lue`)
	require.NoError(t, err)

	// Escaped runs contribute their content without the braces.
	server, _ := cs.ServerName()
	assert.Equal(t, "server;", server)

	got, ok := cs.Get("key")
	require.True(t, ok)
	assert.Equal(t, "va[]lue", got)
}

func TestParsePropertyDetails(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "keys are lowercased",
			input: "jdbc:sqlserver://h;KEY=v",
			want:  map[string]string{"key": "v"},
		},
		{
			name:  "values keep their case",
			input: "jdbc:sqlserver://h;key=VaLuE",
			want:  map[string]string{"key": "VaLuE"},
		},
		{
			name:  "whitespace is preserved verbatim",
			input: "jdbc:sqlserver://h;user id=musti naukio",
			want:  map[string]string{"user id": "musti naukio"},
		},
		{
			name:  "duplicate key keeps last value",
			input: "jdbc:sqlserver://h;a=1;A=2",
			want:  map[string]string{"a": "2"},
		},
		{
			name:  "trailing semicolon",
			input: "jdbc:sqlserver://h:1;foo=bar;",
			want:  map[string]string{"foo": "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := jdbc.Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, cs.Properties()); diff != "" {
				t.Errorf("properties mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTrailingSemicolonEquivalence(t *testing.T) {
	with, err := jdbc.Parse("jdbc:sqlserver://h:1;foo=bar;")
	require.NoError(t, err)
	without, err := jdbc.Parse("jdbc:sqlserver://h:1;foo=bar")
	require.NoError(t, err)

	assert.Equal(t, without.String(), with.String())
}

func TestParseAnySubProtocolSuffix(t *testing.T) {
	cs, err := jdbc.Parse("jdbc:postgresql://localhost:5432")
	require.NoError(t, err)
	assert.Equal(t, "jdbc:postgresql", cs.SubProtocol())
}

func TestParsePrependsScheme(t *testing.T) {
	cs, err := jdbc.Parse("sqlserver://host:1433")
	require.NoError(t, err)

	assert.Equal(t, "jdbc:sqlserver", cs.SubProtocol())
	server, _ := cs.ServerName()
	assert.Equal(t, "host", server)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "wrong scheme literal", input: "jdbq:sqlserver://", wantErr: "Invalid JDBC sub-protocol"},
		{name: "missing colon", input: "jdbcsqlserver://", wantErr: "Invalid JDBC sub-protocol"},
		{name: "missing suffix", input: "jdbc:://", wantErr: "Invalid JDBC sub-protocol"},
		{name: "single slash", input: "jdbc:sqlserver:/x", wantErr: "Invalid JDBC sub-protocol"},
		{name: "port is not a number", input: "jdbc:sqlserver://h:x", wantErr: "Invalid port"},
		{name: "port out of range", input: "jdbc:sqlserver://h:99999", wantErr: "Invalid port"},
		{name: "missing port digits", input: "jdbc:sqlserver://h:;a=b", wantErr: "Invalid port"},
		{name: "empty instance name", input: `jdbc:sqlserver://h\;a=b`, wantErr: "Invalid instance name"},
		{name: "property without equals", input: "jdbc:sqlserver://h;key", wantErr: "Property pairs must be joined by a `=`"},
		{name: "empty property key", input: "jdbc:sqlserver://h;=v", wantErr: "Invalid property key"},
		{name: "empty property value", input: "jdbc:sqlserver://h;k=", wantErr: "Invalid property value"},
		{name: "trailing unconsumed token", input: "jdbc:sqlserver://h;k=v=w", wantErr: "Invalid JDBC token"},
		{name: "unclosed escape", input: "jdbc:sqlserver://{h", wantErr: "unclosed escape literal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jdbc.Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
