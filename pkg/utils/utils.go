package utils

import "github.com/treeforest/basex/base58check"

func IsValidAddress(addr string) bool {
	version, _, err := base58check.Decode(addr)
	return err == nil && version == base58check.Version
}
