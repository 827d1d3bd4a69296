// Package coder looks codecs up by name for the command line and HTTP front ends.
package coder

import (
	"sort"

	"github.com/treeforest/basex/base32"
	"github.com/treeforest/basex/base58"
	"github.com/treeforest/basex/codec"
	"github.com/treeforest/basex/config"
)

type Coder struct {
	Name   string
	Encode func(src []byte) string
	Decode func(s string) ([]byte, error)
}

// DecodeToString decodes s and converts the result to text.
func (c Coder) DecodeToString(s string) (string, error) {
	b, err := c.Decode(s)
	if err != nil {
		return "", err
	}
	return codec.ToText(b)
}

var coders = map[string]Coder{
	config.CodecBase32: {Name: config.CodecBase32, Encode: base32.Encode, Decode: base32.Decode},
	config.CodecBase58: {Name: config.CodecBase58, Encode: base58.Encode, Decode: base58.Decode},
}

func Get(name string) (Coder, bool) {
	c, ok := coders[name]
	return c, ok
}

func Names() []string {
	names := make([]string, 0, len(coders))
	for name := range coders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
