// Package codec holds the symbol tables and error kinds shared by the
// base32 and base58 packages.
package codec

import "fmt"

const (
	// Base32Padding 填充字符
	Base32Padding = '='

	base32Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	base58Symbols = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz" // 去掉了 0 O I l
)

var (
	// Base32 RFC 4648 基数表
	Base32 = NewAlphabet(base32Symbols)
	// Base58 比特币基数表
	Base58 = NewAlphabet(base58Symbols)
)

// Alphabet is an ordered digit to symbol mapping. It is never modified after
// NewAlphabet returns, so a single value can be shared by any number of
// goroutines.
type Alphabet struct {
	symbols string
	index   [256]int16 // symbol => digit, -1 means not in the alphabet
}

// NewAlphabet builds the lookup table for symbols. It panics if a symbol is
// repeated or is not printable ASCII.
func NewAlphabet(symbols string) *Alphabet {
	a := &Alphabet{symbols: symbols}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c < 0x21 || c > 0x7e {
			panic(fmt.Sprintf("codec: symbol %q is not printable ascii", c))
		}
		if a.index[c] != -1 {
			panic(fmt.Sprintf("codec: duplicate symbol %q", c))
		}
		a.index[c] = int16(i)
	}
	return a
}

// Radix returns the number of symbols.
func (a *Alphabet) Radix() int {
	return len(a.symbols)
}

// Symbol returns the symbol for digit d.
func (a *Alphabet) Symbol(d int) byte {
	return a.symbols[d]
}

// Index returns the digit value of c and whether c belongs to the alphabet.
func (a *Alphabet) Index(c byte) (int, bool) {
	d := a.index[c]
	return int(d), d >= 0
}

// Contains reports whether every byte of s is a symbol.
func (a *Alphabet) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if a.index[s[i]] < 0 {
			return false
		}
	}
	return true
}

func (a *Alphabet) String() string {
	return a.symbols
}
