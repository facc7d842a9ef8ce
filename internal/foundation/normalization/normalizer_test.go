package normalization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider string

const (
	providerLocal    provider = "local"
	providerExternal provider = "external"
)

func newProviderNormalizer() *Normalizer[provider] {
	return NewNormalizer(map[string]provider{
		"local":    providerLocal,
		"external": providerExternal,
		"algolia":  providerExternal,
	}, providerLocal)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newProviderNormalizer()

	tests := []struct {
		name     string
		input    string
		expected provider
	}{
		{"exact match", "local", providerLocal},
		{"case insensitive", "EXTERNAL", providerExternal},
		{"with spaces", "  local  ", providerLocal},
		{"alias", "Algolia", providerExternal},
		{"unknown falls back", "elastic", providerLocal},
		{"empty falls back", "", providerLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_Lookup(t *testing.T) {
	n := newProviderNormalizer()

	v, ok := n.Lookup(" ALGOLIA")
	require.True(t, ok)
	require.Equal(t, providerExternal, v)

	_, ok = n.Lookup("elastic")
	require.False(t, ok)
}

func TestNormalizer_NormalizeWithError(t *testing.T) {
	n := newProviderNormalizer()

	_, err := n.NormalizeWithError("elastic")
	require.EqualError(t, err, `invalid value "elastic", valid options: [algolia external local]`)

	v, err := n.NormalizeWithError("Local")
	require.NoError(t, err)
	require.Equal(t, providerLocal, v)
}

func TestNormalizer_ValidKeysIsCopy(t *testing.T) {
	n := newProviderNormalizer()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	require.Equal(t, []string{"algolia", "external", "local"}, n.ValidKeys())
	require.Equal(t, providerLocal, n.Default())
}
