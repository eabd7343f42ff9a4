package xfl

import "fmt"

const (
	signBit      uint64 = 1 << 62
	invalidBit   uint64 = 1 << 63
	mantissaMask uint64 = (1 << 54) - 1
	exponentBias int32  = 97
)

// Uint64 packs v into its 64-bit XFL word. Zero packs to 0.
func (v Value) Uint64() uint64 {
	if v.IsZero() {
		return 0
	}
	var u uint64
	if !v.negative {
		u |= signBit
	}
	u |= uint64(v.exponent+exponentBias) << 54
	u |= v.mantissa & mantissaMask
	return u
}

// FromUint64 unpacks a 64-bit XFL word.
func FromUint64(u uint64) (Value, error) {
	if u == 0 {
		return Zero, nil
	}
	if u&invalidBit != 0 {
		return Zero, fmt.Errorf("%w: high bit set in %016X", ErrInvalidEncoding, u)
	}
	v := Value{
		negative: u&signBit == 0,
		mantissa: u & mantissaMask,
		exponent: int32((u>>54)&0xff) - exponentBias,
	}
	if v.mantissa < minMantissa || v.mantissa > maxMantissa {
		return Zero, fmt.Errorf("%w: mantissa %d not normalised in %016X", ErrInvalidEncoding, v.mantissa, u)
	}
	if v.exponent < minExponent || v.exponent > maxExponent {
		return Zero, fmt.Errorf("%w: exponent %d out of range in %016X", ErrInvalidEncoding, v.exponent, u)
	}
	return v, nil
}
