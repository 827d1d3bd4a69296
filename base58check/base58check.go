package base58check

import (
	"bytes"
	"crypto/sha256"

	"github.com/pkg/errors"
	"github.com/treeforest/basex/base58"
)

const (
	// Version 地址版本号
	Version = byte(0x00)

	checksumLen = 4
)

var (
	ErrTooShort = errors.New("base58check: encoded data too short")
	ErrChecksum = errors.New("base58check: checksum error")
)

// Encode 编码 version || payload || checksum。
// version 为0时，结果以'1'开头(比特币地址由1开始的原因)。
func Encode(version byte, payload []byte) string {
	encoded := make([]byte, 0, 1+len(payload)+checksumLen)
	encoded = append(encoded, version)
	encoded = append(encoded, payload...)
	encoded = append(encoded, checksum(encoded)...)
	return base58.Encode(encoded)
}

// Decode 解码并验证校验码
func Decode(s string) (version byte, payload []byte, err error) {
	encoded, err := base58.Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(encoded) < 1+checksumLen {
		return 0, nil, ErrTooShort
	}

	n := len(encoded) - checksumLen
	if !bytes.Equal(checksum(encoded[:n]), encoded[n:]) {
		return 0, nil, ErrChecksum
	}

	return encoded[0], encoded[1:n], nil
}

// checksum 执行两次 SHA-256，取前4个字节
func checksum(b []byte) []byte {
	hash := sha256.Sum256(b)
	hash2 := sha256.Sum256(hash[:])
	return hash2[:checksumLen]
}
