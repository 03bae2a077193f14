package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		require.NotEmpty(t, k.String())
	}
	require.Equal(t, "illegal token", Kind(-1).String())
	require.Equal(t, "illegal token", maxKind.String())
}

func TestLookupKeyword(t *testing.T) {
	for lit, k := range keywords {
		require.Equal(t, k, LookupKeyword(lit))
	}
	require.Equal(t, IDENT, LookupKeyword("notakeyword"))
	require.Equal(t, IDENT, LookupKeyword("printer"))
}
