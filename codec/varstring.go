package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/anyswap/xrpl-model-codec/common"
)

// VarStringToHex encodes value as a length prefix followed by its UTF-8
// bytes, zero padded to a slot of maxStringLength bytes.
func VarStringToHex(value string, maxStringLength int) (string, error) {
	if maxStringLength <= 0 {
		return "", &ConfigurationError{Attribute: "maxStringLength", Reason: "is required for type varString"}
	}
	if !utf8.ValidString(value) {
		return "", fmt.Errorf("%w: varString is not valid UTF-8", ErrInvalidValue)
	}
	if len(value) > maxStringLength {
		return "", &LengthExceededError{What: "string", Length: len(value), Max: maxStringLength}
	}
	prefix, err := LengthToHex(len(value), maxStringLength)
	if err != nil {
		return "", err
	}
	content := common.PadRight(common.StringToHex(value), maxStringLength*2)
	encoded := prefix + content
	if slot := len(prefix) + maxStringLength*2; len(encoded) != slot {
		return "", &LengthExceededError{What: "encoded string", Length: len(encoded), Max: slot}
	}
	return encoded, nil
}

// VarStringWidth returns the total hex digits of a varString slot.
func VarStringWidth(maxStringLength int) (int, error) {
	width, err := LengthPrefixWidth(maxStringLength)
	if err != nil {
		return 0, err
	}
	return width + maxStringLength*2, nil
}

// HexToVarString decodes a full varString slot, ignoring the padding
// after the prefixed byte count.
func HexToVarString(hex string, maxStringLength int) (string, error) {
	if maxStringLength <= 0 {
		return "", &ConfigurationError{Attribute: "maxStringLength", Reason: "is required for type varString"}
	}
	slot, err := VarStringWidth(maxStringLength)
	if err != nil {
		return "", err
	}
	if err := checkWidth(hex, slot, "varString"); err != nil {
		return "", err
	}
	prefixWidth := slot - maxStringLength*2
	length, err := HexToLength(hex[:prefixWidth], maxStringLength)
	if err != nil {
		return "", err
	}
	if length > maxStringLength {
		return "", &LengthExceededError{What: "string", Length: length, Max: maxStringLength}
	}
	s, err := common.HexToString(hex[prefixWidth : prefixWidth+length*2])
	if err != nil {
		return "", &DecodeError{Offset: prefixWidth, Err: ErrMalformed}
	}
	if !utf8.ValidString(s) {
		return "", &DecodeError{Offset: prefixWidth, Err: ErrMalformed}
	}
	return s, nil
}
