// Package idgen generates short random identifiers and tokens.
package idgen

import (
	"crypto/rand"
	"strings"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"github.com/treeforest/basex/base32"
	"github.com/treeforest/basex/base58"
)

var ErrInvalidID = errors.New("invalid id")

// NewID returns a random (version 4) UUID in base58 form.
func NewID() string {
	return base58.Encode(uuid.NewRandom())
}

// ParseID reverses NewID.
func ParseID(id string) (uuid.UUID, error) {
	b, err := base58.Decode(id)
	if err != nil {
		return nil, err
	}
	if len(b) != 16 {
		return nil, errors.Wrapf(ErrInvalidID, "length %d", len(b))
	}
	return uuid.UUID(b), nil
}

// NewToken returns n random bytes as unpadded base32.
func NewToken(n int) (string, error) {
	if n <= 0 {
		return "", errors.Errorf("token length %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", errors.WithStack(err)
	}
	return strings.TrimRight(base32.Encode(b), "="), nil
}
