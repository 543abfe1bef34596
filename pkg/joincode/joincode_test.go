package joincode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	t.Parallel()

	for range 100 {
		code, err := New()
		require.NoError(t, err)
		require.Len(t, code, 7)
		require.Equal(t, byte('-'), code[3])
		require.True(t, Valid(code), "generated code %q should validate", code)

		for _, c := range strings.ReplaceAll(code, "-", "") {
			require.Contains(t, alphabet, string(c))
		}
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	require.True(t, Valid("A8B-C1D"))
	require.False(t, Valid("a8b-c1d"))
	require.False(t, Valid("A8BC1D"))
	require.False(t, Valid("A8B-C1"))
	require.False(t, Valid(""))
	require.False(t, Valid("A8B-C1DX"))
}
