package base32

import (
	"strings"

	"github.com/treeforest/basex/codec"
)

const (
	blockSize = 8 // 输出长度总是8的倍数
)

// EncodedLen returns the length of Encode's output for n input bytes.
func EncodedLen(n int) int {
	return (n + 4) / 5 * blockSize
}

// Encode 将 src 按5比特一组编码，不足8个字符时以'='补齐
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	var (
		acc  uint   // 比特累加器
		bits uint   // 累加器中未输出的比特数
		dst  []byte // 编码结果
	)

	dst = make([]byte, 0, EncodedLen(len(src)))
	for _, b := range src {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 5 {
			dst = append(dst, codec.Base32.Symbol(int(acc>>(bits-5)&0x1F)))
			bits -= 5
		}
		acc &= 1<<bits - 1 // 只保留未输出的比特，避免溢出
	}

	if bits > 0 {
		dst = append(dst, codec.Base32.Symbol(int(acc<<(5-bits)&0x1F)))
	}

	for len(dst)%blockSize != 0 {
		dst = append(dst, codec.Base32Padding)
	}

	return string(dst)
}

// EncodeString encodes the UTF-8 bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// Decode 解码 s。末尾的'='全部去掉后，其余字符必须都在基数表中，
// 遇到第一个非法字符立即返回 *codec.InvalidCharacterError。
func Decode(s string) ([]byte, error) {
	s = strings.TrimRight(s, string(codec.Base32Padding))

	var (
		acc  uint
		bits uint
	)

	dst := make([]byte, 0, len(s)*5/8)
	for i := 0; i < len(s); i++ {
		d, ok := codec.Base32.Index(s[i])
		if !ok {
			return nil, codec.NewInvalidCharacterError(s, i)
		}
		acc = acc<<5 | uint(d)
		bits += 5
		if bits >= 8 {
			dst = append(dst, byte(acc>>(bits-8)))
			bits -= 8
		}
		acc &= 1<<bits - 1
	}

	// 剩余不足8比特的部分来自补齐，不是数据
	return dst, nil
}

// DecodeToString decodes s and returns the result as text. Errors from Decode
// are returned unchanged; bytes that are not UTF-8 fail with
// codec.ErrInvalidUTF8.
func DecodeToString(s string) (string, error) {
	b, err := Decode(s)
	if err != nil {
		return "", err
	}
	return codec.ToText(b)
}
