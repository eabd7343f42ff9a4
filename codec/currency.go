package codec

import (
	"strconv"
	"strings"

	"github.com/anyswap/xrpl-model-codec/common"
)

const (
	currencyWidth = 40
	// a standard code sits in bytes 12..14 of the 20 byte slot
	standardCodeStart = 24
	standardCodeEnd   = 30
)

// CurrencyToHex encodes a currency as 20 bytes.
//
// Codes of up to 3 characters use the standard layout: twelve zero bytes,
// the code, then zero padding. A 40 digit hex string is taken as a raw
// currency identifier. Any other text is hex encoded left aligned.
func CurrencyToHex(value string) (string, error) {
	if len(value) == currencyWidth && common.IsHex(value) {
		return strings.ToUpper(value), nil
	}
	content := common.StringToHex(value)
	if len(value) <= 3 {
		return common.PadLeft(common.PadRight(content, 16), currencyWidth), nil
	}
	if len(content) > currencyWidth {
		return "", &LengthExceededError{What: "currency", Length: len(value), Max: currencyWidth / 2}
	}
	return common.PadRight(content, currencyWidth), nil
}

// HexToCurrency decodes 20 bytes. The standard layout decodes to its
// code, anything else to the 40 digit upper case identifier.
func HexToCurrency(hex string) (string, error) {
	if err := checkWidth(hex, currencyWidth, "currency"); err != nil {
		return "", err
	}
	hex = strings.ToUpper(hex)
	if code, ok := standardCode(hex); ok {
		return code, nil
	}
	return hex, nil
}

func standardCode(hex string) (string, bool) {
	if !common.IsZeroHex(hex[:standardCodeStart]) || !common.IsZeroHex(hex[standardCodeEnd:]) {
		return "", false
	}
	code := hex[standardCodeStart:standardCodeEnd]
	if common.IsZeroHex(code) {
		return "", true
	}
	// trailing zero bytes belong to codes shorter than 3 characters
	for strings.HasSuffix(code, "00") {
		code = code[:len(code)-2]
	}
	s, err := common.HexToString(code)
	if err != nil {
		return "", false
	}
	for _, r := range s {
		if r == 0 || !strconv.IsPrint(r) {
			return "", false
		}
	}
	return s, true
}
