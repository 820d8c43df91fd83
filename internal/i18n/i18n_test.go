package i18n

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	l, ok := Parse(" FA ")
	require.True(t, ok)
	assert.Equal(t, Persian, l)

	_, ok = Parse("de")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		query, cookie  string
		acceptLanguage string
		want           Language
	}{
		{"nothing set", "", "", "", English},
		{"query wins over cookie", "fa", "en", "", Persian},
		{"invalid query falls back to cookie", "xx", "fa", "", Persian},
		{"invalid cookie falls back to default", "", "de", "", English},
		{"accept-language negotiated", "", "", "fa-IR,fa;q=0.9,en;q=0.5", Persian},
		{"accept-language unsupported", "", "", "de-DE", English},
		{"cookie wins over header", "", "en", "fa", English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.query, tt.cookie, tt.acceptLanguage))
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "ltr", English.Dir())
	assert.Equal(t, "rtl", Persian.Dir())
	assert.Equal(t, "fa", Persian.Tag().String())
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, "Previous", c.Text(English, "docs_prev"))
	assert.Equal(t, "قبلی", c.Text(Persian, "docs_prev"))
	assert.Equal(t, "Getting Started", c.DocText(English, "Getting Started"))
	assert.Equal(t, "شروع کار", c.DocText(Persian, "Getting Started"))
	assert.Equal(t, "مرجع API", c.DocText(Persian, "API Reference"))

	// Unknown keys echo back, unknown languages fall back to English.
	assert.Equal(t, "no_such_key", c.Text(Persian, "no_such_key"))
	assert.Equal(t, "Next", c.Text(Language("de"), "docs_next"))
}

func TestCatalogTablesHaveSameKeys(t *testing.T) {
	c := DefaultCatalog()
	en := c.Keys(English)
	fa := c.Keys(Persian)
	sort.Strings(en)
	sort.Strings(fa)
	assert.Equal(t, en, fa)
}

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte("en:\n  ui:\n    hello: Hello\nfa:\n  docs:\n    Help: راهنما\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", c.Text(Persian, "hello"))
	assert.Equal(t, "راهنما", c.DocText(Persian, "Help"))

	_, err = ParseCatalog([]byte("de:\n  ui: {}\n"))
	require.Error(t, err)

	_, err = ParseCatalog([]byte("fa:\n  ui: {}\n"))
	require.Error(t, err)
}
