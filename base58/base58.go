package base58

import (
	"math/big"

	"github.com/treeforest/basex/codec"
)

var (
	radix = big.NewInt(58) // 除数
)

// Encode 把 src 看作一个大端序的大整数，用除余法转换为58进制。
// 前导的0字节在数值上会消失，需要按个数补上'1'。
func Encode(src []byte) string {
	var (
		x    *big.Int // src对应的大整数
		zero *big.Int // 大整数0
		mod  *big.Int // 模
		dst  []byte   // 编码结果(逆序)
	)

	zeros := leadingZeros(src)

	x = new(big.Int).SetBytes(src)
	zero = big.NewInt(0)
	mod = new(big.Int)
	// log(256)/log(58) ≈ 1.37
	dst = make([]byte, 0, zeros+len(src)*138/100+1)
	for x.Cmp(zero) != 0 {
		x.DivMod(x, radix, mod)
		dst = append(dst, codec.Base58.Symbol(int(mod.Int64())))
	}

	for i := 0; i < zeros; i++ {
		dst = append(dst, codec.Base58.Symbol(0))
	}

	reverse(dst)
	return string(dst)
}

// EncodeString encodes the UTF-8 bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// Decode 解码 s。每个字符在累加前先校验；开头连续的'1'表示同样个数的0字节。
func Decode(s string) ([]byte, error) {
	r := new(big.Int)
	digit := new(big.Int)
	ones := 0
	leading := true
	for i := 0; i < len(s); i++ {
		d, ok := codec.Base58.Index(s[i])
		if !ok {
			return nil, codec.NewInvalidCharacterError(s, i)
		}
		if leading {
			if d == 0 {
				ones++
				continue // 不影响数值
			}
			leading = false
		}
		r.Mul(r, radix)
		r.Add(r, digit.SetInt64(int64(d)))
	}

	b := r.Bytes() // 最小大端序表示，0 为空
	dst := make([]byte, ones+len(b))
	copy(dst[ones:], b)
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

func leadingZeros(b []byte) int {
	n := 0
	for n < len(b) && b[n] == 0 {
		n++
	}
	return n
}

func reverse(b []byte) {
	i, j := 0, len(b)-1
	for i < j {
		b[i], b[j] = b[j], b[i]
		i++
		j--
	}
}
