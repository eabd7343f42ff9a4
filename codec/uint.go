package codec

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/anyswap/xrpl-model-codec/common"
)

func uintTypeName(bits uint) string {
	return "uint" + strconv.FormatUint(uint64(bits), 10)
}

func rangeError(bits uint, value string) error {
	return &RangeError{
		Type:  uintTypeName(bits),
		Value: value,
		Min:   "0",
		Max:   common.MaxUintN(bits).String(),
	}
}

// nativeToHex handles widths up to 32 bits on int64.
func nativeToHex(value int64, bits uint, little bool) (string, error) {
	if value < 0 || value > int64(1)<<bits-1 {
		return "", rangeError(bits, strconv.FormatInt(value, 10))
	}
	hex := common.PadLeft(strings.ToUpper(strconv.FormatInt(value, 16)), int(bits/4))
	if little {
		return common.FlipHex(hex), nil
	}
	return hex, nil
}

func hexToNative(hex string, bits uint, little bool) (uint64, error) {
	if err := checkWidth(hex, int(bits/4), uintTypeName(bits)); err != nil {
		return 0, err
	}
	if little {
		hex = common.FlipHex(hex)
	}
	v, err := strconv.ParseUint(hex, 16, int(bits))
	if err != nil {
		return 0, &DecodeError{Err: ErrMalformed}
	}
	return v, nil
}

// checkWidth requires exactly width hex digits.
func checkWidth(hex string, width int, what string) error {
	if len(hex) > width {
		return &LengthExceededError{What: what + " hex", Length: len(hex), Max: width}
	}
	if len(hex) < width {
		return &DecodeError{Need: width, Have: len(hex), Err: ErrTruncated}
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return &DecodeError{Offset: i, Err: ErrMalformed}
		}
	}
	return nil
}

// Uint8ToHex encodes 0..255 as two hex digits.
func Uint8ToHex(value int64) (string, error) {
	return nativeToHex(value, 8, false)
}

// HexToUint8 decodes two hex digits.
func HexToUint8(hex string) (uint8, error) {
	v, err := hexToNative(hex, 8, false)
	return uint8(v), err
}

// Uint16ToHex encodes 0..65535 as four hex digits.
func Uint16ToHex(value int64, little bool) (string, error) {
	return nativeToHex(value, 16, little)
}

func HexToUint16(hex string, little bool) (uint16, error) {
	v, err := hexToNative(hex, 16, little)
	return uint16(v), err
}

// Uint32ToHex encodes 0..2^32-1 as eight hex digits.
func Uint32ToHex(value int64, little bool) (string, error) {
	return nativeToHex(value, 32, little)
}

func HexToUint32(hex string, little bool) (uint32, error) {
	v, err := hexToNative(hex, 32, little)
	return uint32(v), err
}

// Uint64ToHex encodes 0..2^64-1 as sixteen hex digits.
func Uint64ToHex(value *big.Int, little bool) (string, error) {
	return UintToHex(64, value, little)
}

func HexToUint64(hex string, little bool) (*big.Int, error) {
	return HexToUint(64, hex, little)
}

// Uint224ToHex encodes 0..2^224-1 as 56 hex digits.
func Uint224ToHex(value *big.Int, little bool) (string, error) {
	return UintToHex(224, value, little)
}

func HexToUint224(hex string, little bool) (*big.Int, error) {
	return HexToUint(224, hex, little)
}

// UintToHex encodes an unsigned integer of the given bit width as
// bits/4 hex digits, byte reversed when little is set.
func UintToHex(bits uint, value *big.Int, little bool) (string, error) {
	if value == nil {
		return "", rangeError(bits, "<nil>")
	}
	if !common.IsUintN(value, bits) {
		return "", rangeError(bits, value.String())
	}
	hex := common.PadLeft(strings.ToUpper(value.Text(16)), int(bits/4))
	if little {
		return common.FlipHex(hex), nil
	}
	return hex, nil
}

// HexToUint decodes bits/4 hex digits into an unsigned integer.
func HexToUint(bits uint, hex string, little bool) (*big.Int, error) {
	if err := checkWidth(hex, int(bits/4), uintTypeName(bits)); err != nil {
		return nil, err
	}
	if little {
		hex = common.FlipHex(hex)
	}
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, &DecodeError{Err: ErrMalformed}
	}
	return v, nil
}

// LengthPrefixWidth returns the hex digits of the length prefix used for
// a declared maximum: 2 up to 256, 4 up to 65536.
func LengthPrefixWidth(maxLength int) (int, error) {
	switch {
	case maxLength <= 0:
		return 0, &ConfigurationError{Attribute: "max length", Reason: "must be positive"}
	case maxLength <= 1<<8:
		return 2, nil
	case maxLength <= 1<<16:
		return 4, nil
	}
	return 0, &ConfigurationError{Attribute: "max length " + strconv.Itoa(maxLength), Reason: "exceeds 2 bytes"}
}

// LengthToHex encodes count as a 1 or 2 byte prefix chosen by maxLength.
func LengthToHex(count, maxLength int) (string, error) {
	width, err := LengthPrefixWidth(maxLength)
	if err != nil {
		return "", err
	}
	if count < 0 || count > maxLength {
		return "", &LengthExceededError{What: "length", Length: count, Max: maxLength}
	}
	bits := uint(width * 4)
	if count > 1<<bits-1 {
		return "", &LengthExceededError{What: "length prefix", Length: count, Max: 1<<bits - 1}
	}
	return nativeToHex(int64(count), bits, false)
}

// HexToLength decodes a length prefix of the width chosen by maxLength.
func HexToLength(hex string, maxLength int) (int, error) {
	width, err := LengthPrefixWidth(maxLength)
	if err != nil {
		return 0, err
	}
	v, err := hexToNative(hex, uint(width*4), false)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
