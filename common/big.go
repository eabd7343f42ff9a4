package common

import (
	"math/big"
	"strings"
)

// Common big integers often used
var (
	Big1 = big.NewInt(1)

	BigMaxUint8   = MaxUintN(8)
	BigMaxUint16  = MaxUintN(16)
	BigMaxUint32  = MaxUintN(32)
	BigMaxUint64  = MaxUintN(64)
	BigMaxUint224 = MaxUintN(224)
)

// MaxUintN returns 2^bits - 1 as a new big integer.
func MaxUintN(bits uint) *big.Int {
	max := new(big.Int).Lsh(Big1, bits)
	return max.Sub(max, Big1)
}

// IsUintN reports whether 0 <= v <= 2^bits - 1.
func IsUintN(v *big.Int, bits uint) bool {
	return v != nil && v.Sign() >= 0 && v.BitLen() <= int(bits)
}

// GetBigIntFromStr parses a decimal or 0x-prefixed hex integer.
// Leading zeros stay decimal.
func GetBigIntFromStr(str string) (*big.Int, bool) {
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		return new(big.Int).SetString(str[2:], 16)
	}
	return new(big.Int).SetString(str, 10)
}
