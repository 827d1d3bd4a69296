package coder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	require.Equal(t, []string{"base32", "base58"}, Names())

	c, ok := Get("base32")
	require.True(t, ok)
	require.Equal(t, "JBSWY3DP", c.Encode([]byte("Hello")))

	c, ok = Get("base58")
	require.True(t, ok)
	s, err := c.DecodeToString("9Ajdvzr")
	require.NoError(t, err)
	require.Equal(t, "Hello", s)

	_, ok = Get("base64")
	require.False(t, ok)
}
