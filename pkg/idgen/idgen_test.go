package idgen

import (
	"errors"
	"testing"

	"github.com/pborman/uuid"
	"github.com/stretchr/testify/require"
	"github.com/treeforest/basex/base32"
	"github.com/treeforest/basex/base58"
	"github.com/treeforest/basex/codec"
)

func TestID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		require.False(t, seen[id])
		seen[id] = true
		require.True(t, codec.Base58.Contains(id))

		u, err := ParseID(id)
		require.NoError(t, err)
		v, ok := u.Version()
		require.True(t, ok)
		require.Equal(t, 4, int(v))
	}
}

func TestParseID(t *testing.T) {
	u := uuid.Parse("00000000-0000-4000-8000-000000000001")
	require.NotNil(t, u)
	id := base58.Encode(u)
	require.Equal(t, "1111", id[:4])

	got, err := ParseID(id)
	require.NoError(t, err)
	require.True(t, uuid.Equal(u, got))

	_, err = ParseID(base58.EncodeString("short"))
	require.True(t, errors.Is(err, ErrInvalidID))

	_, err = ParseID("not-an-id")
	require.True(t, errors.Is(err, codec.ErrInvalidCharacter))
}

func TestToken(t *testing.T) {
	tok, err := NewToken(20)
	require.NoError(t, err)
	require.Len(t, tok, 32)

	b, err := base32.Decode(tok)
	require.NoError(t, err)
	require.Len(t, b, 20)

	_, err = NewToken(0)
	require.Error(t, err)
}
