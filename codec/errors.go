package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCharacter matches every *InvalidCharacterError via errors.Is.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidUTF8 is returned when decoded bytes are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// InvalidCharacterError reports the first input character that is not part of
// the decoder's alphabet.
type InvalidCharacterError struct {
	Char   rune
	Offset int
}

// NewInvalidCharacterError describes the character starting at byte offset i
// of s.
func NewInvalidCharacterError(s string, i int) *InvalidCharacterError {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return &InvalidCharacterError{Char: r, Offset: i}
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("illegal character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// ToText converts decoded bytes to a string, failing with ErrInvalidUTF8 if
// b is not well-formed UTF-8.
func ToText(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	return "", errors.Wrapf(ErrInvalidUTF8, "at offset %d", firstInvalid(b))
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return len(b)
}
