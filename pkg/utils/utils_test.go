package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeforest/basex/base58check"
)

func TestIsValidAddress(t *testing.T) {
	require.True(t, IsValidAddress("1111111111111111111114oLvT2"))
	require.True(t, IsValidAddress(base58check.Encode(base58check.Version, []byte("hash"))))
	require.False(t, IsValidAddress(base58check.Encode(0x05, []byte("hash"))))
	require.False(t, IsValidAddress("1111111111111111111114oLvT3"))
	require.False(t, IsValidAddress("0x1234"))
	require.False(t, IsValidAddress(""))
}
