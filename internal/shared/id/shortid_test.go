package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{1, 8, 12, 32} {
		got, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
	}
}

func TestGenerate_DefaultLengthOnInvalid(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)

	got, err = Generate(-5)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_AlphabetOnly(t *testing.T) {
	got, err := Generate(64)
	require.NoError(t, err)
	for _, c := range got {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixListing, 12)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "lst_"))
	assert.Len(t, got, len("lst_")+12)
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "abc123", StripPrefix("lst_abc123"))
	assert.Equal(t, "abc123", StripPrefix("abc123"))
	assert.Equal(t, "", StripPrefix("sub_"))
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("sub_xyz", PrefixSubscription))
	assert.False(t, HasPrefix("lst_xyz", PrefixSubscription))
	assert.False(t, HasPrefix("subxyz", PrefixSubscription))
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := MustGenerate(DefaultLength)
		require.False(t, seen[got], "duplicate ID generated: %s", got)
		seen[got] = true
	}
}
