package codec

import "strings"

// Hash256ToHex passes a 32 byte hash through, upper cased.
func Hash256ToHex(value string) (string, error) {
	if err := checkWidth(value, 64, "hash256"); err != nil {
		return "", err
	}
	return strings.ToUpper(value), nil
}

// HexToHash256 is the inverse of Hash256ToHex.
func HexToHash256(hex string) (string, error) {
	return Hash256ToHex(hex)
}

// PublicKeyToHex passes a 33 byte public key through, upper cased.
func PublicKeyToHex(value string) (string, error) {
	if err := checkWidth(value, 66, "publicKey"); err != nil {
		return "", err
	}
	return strings.ToUpper(value), nil
}

// HexToPublicKey is the inverse of PublicKeyToHex.
func HexToPublicKey(hex string) (string, error) {
	return PublicKeyToHex(hex)
}
