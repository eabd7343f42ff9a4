package common

import (
	"encoding/hex"
	"strings"
)

const hextable = "0123456789ABCDEF"

// ToHex renders bytes as upper case hex.
func ToHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}

// FromHex decodes hex of either case.
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// IsHex reports whether s is a non-empty string of hex digits with even length.
func IsHex(s string) bool {
	if len(s) == 0 || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexChar(s[i]) {
			return false
		}
	}
	return true
}

func isHexChar(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// StringToHex renders the UTF-8 bytes of s as upper case hex.
func StringToHex(s string) string {
	return ToHex([]byte(s))
}

// HexToString decodes hex into a string of raw bytes.
func HexToString(h string) (string, error) {
	b, err := FromHex(h)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FlipHex reverses the byte order of a hex string, keeping each
// two-digit byte intact. "0A00" becomes "000A".
func FlipHex(h string) string {
	n := len(h)
	out := make([]byte, n)
	for i := 0; i+1 < n; i += 2 {
		out[n-i-2] = h[i]
		out[n-i-1] = h[i+1]
	}
	if n%2 == 1 {
		// odd trailing nibble stays in front
		out[0] = h[n-1]
	}
	return string(out)
}

// PadLeft pads s with '0' on the left up to width characters.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// PadRight pads s with '0' on the right up to width characters.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat("0", width-len(s))
}

// IsZeroHex reports whether every digit of h is '0'.
func IsZeroHex(h string) bool {
	for i := 0; i < len(h); i++ {
		if h[i] != '0' {
			return false
		}
	}
	return true
}
