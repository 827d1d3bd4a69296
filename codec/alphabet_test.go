package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	require.Equal(t, 32, Base32.Radix())
	require.Equal(t, 58, Base58.Radix())

	for d := 0; d < Base58.Radix(); d++ {
		i, ok := Base58.Index(Base58.Symbol(d))
		require.True(t, ok)
		require.Equal(t, d, i)
	}

	// 易混淆字符
	for _, c := range []byte("0OIl") {
		_, ok := Base58.Index(c)
		require.False(t, ok, "%c", c)
	}

	_, ok := Base32.Index('=')
	require.False(t, ok)
	require.True(t, Base32.Contains("JBSWY3DP"))
	require.False(t, Base32.Contains("jbswy3dp"))
}

func TestNewAlphabetPanics(t *testing.T) {
	require.Panics(t, func() { NewAlphabet("ABCA") })
	require.Panics(t, func() { NewAlphabet("AB C") })
}

func TestInvalidCharacterError(t *testing.T) {
	err := error(NewInvalidCharacterError("JBSWY3D@", 7))
	require.True(t, errors.Is(err, ErrInvalidCharacter))
	require.EqualError(t, err, "illegal character '@' at offset 7")

	var ice *InvalidCharacterError
	require.True(t, errors.As(err, &ice))
	require.Equal(t, '@', ice.Char)

	ice = NewInvalidCharacterError("abé", 2)
	require.Equal(t, 'é', ice.Char)
}

func TestToText(t *testing.T) {
	s, err := ToText([]byte("Hello"))
	require.NoError(t, err)
	require.Equal(t, "Hello", s)

	_, err = ToText([]byte{'o', 'k', 0xff, 0xfe})
	require.True(t, errors.Is(err, ErrInvalidUTF8))
	require.Contains(t, err.Error(), "offset 2")
}
