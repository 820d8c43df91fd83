package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
)

func newFormatNormalizer() *Normalizer[format] {
	return NewNormalizer(map[string]format{
		"text": formatText,
		"JSON": formatJSON,
	}, formatText)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newFormatNormalizer()

	tests := []struct {
		input    string
		expected format
	}{
		{"text", formatText},
		{"json", formatJSON},
		{"  Json ", formatJSON},
		{"yaml", formatText},
		{"", formatText},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_NormalizeWithError(t *testing.T) {
	n := newFormatNormalizer()

	v, err := n.NormalizeWithError("JSON")
	require.NoError(t, err)
	assert.Equal(t, formatJSON, v)

	_, err = n.NormalizeWithError("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[json text]")
}

func TestNormalizer_ValidKeysIsACopy(t *testing.T) {
	n := newFormatNormalizer()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"json", "text"}, n.ValidKeys())
}
