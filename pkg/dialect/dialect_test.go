package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		dialect *Dialect
		input   string
		want    string
	}{
		{
			name:    "backtick quoting",
			dialect: &Dialect{QuoteOpen: "`", QuoteClose: "`"},
			input:   "users",
			want:    "`users`",
		},
		{
			name:    "double quote quoting",
			dialect: &Dialect{QuoteOpen: `"`, QuoteClose: `"`},
			input:   "users",
			want:    `"users"`,
		},
		{
			name:    "uppercase before quoting",
			dialect: &Dialect{QuoteOpen: `"`, QuoteClose: `"`, UppercaseIdentifiers: true},
			input:   "order",
			want:    `"ORDER"`,
		},
		{
			name:    "no quote characters leaves name bare",
			dialect: &Dialect{},
			input:   "users",
			want:    "users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dialect.QuoteIdentifier(tt.input))
		})
	}
}

func TestHasType(t *testing.T) {
	d := &Dialect{DataTypes: []string{"INT", "VARCHAR", "TEXT"}}

	assert.True(t, d.HasType("VARCHAR"))
	assert.True(t, d.HasType("varchar"), "lookup is case-insensitive")
	assert.False(t, d.HasType("GEOGRAPHY"))
}

func TestRegistry(t *testing.T) {
	Register(&Dialect{Name: "testonly", QuoteOpen: "[", QuoteClose: "]"})

	d, ok := Get("testonly")
	require.True(t, ok)
	assert.Equal(t, "[users]", d.QuoteIdentifier("users"))

	_, ok = Get("no-such-dialect")
	assert.False(t, ok)

	assert.Contains(t, List(), "testonly")
}

func TestGetOrFallback(t *testing.T) {
	d := GetOrFallback("no-such-dialect")

	assert.Equal(t, "generic", d.Name)
	assert.Equal(t, "users", d.QuoteIdentifier("users"), "fallback emits unquoted identifiers")
	assert.Equal(t, " AUTO_INCREMENT", d.AutoIncrement)
}

func TestGetIsCaseInsensitive(t *testing.T) {
	Register(&Dialect{Name: "CaseTest"})

	_, ok := Get("casetest")
	assert.True(t, ok)
	_, ok = Get("CASETEST")
	assert.True(t, ok)
}
