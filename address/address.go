// Package address converts between checksummed account addresses and
// the 20-byte account IDs they encode.
package address

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/anyswap/xrpl-model-codec/common"
	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// errors
var (
	ErrChecksum  = errors.New("address: bad base58 checksum")
	ErrFormat    = errors.New("address: invalid base58 string")
	ErrVersion   = errors.New("address: not an account address")
	ErrLength    = errors.New("address: wrong payload length")
	ErrPublicKey = errors.New("address: invalid public key")
)

var toBitcoin, toLedger [256]byte

func init() {
	for i := 0; i < len(ALPHABET); i++ {
		toBitcoin[ALPHABET[i]] = bitcoinAlphabet[i]
		toLedger[bitcoinAlphabet[i]] = ALPHABET[i]
	}
}

// translate maps every character through table. Characters outside
// the source alphabet become '0', which neither alphabet contains.
func translate(s string, table *[256]byte) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := table[s[i]]
		if c == 0 {
			c = '0'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// DecodeAccountID returns the 20-byte account ID of addr.
func DecodeAccountID(addr string) ([]byte, error) {
	payload, version, err := base58.CheckDecode(translate(addr, &toBitcoin))
	switch {
	case err == base58.ErrChecksum:
		return nil, fmt.Errorf("%w: %s", ErrChecksum, addr)
	case err != nil:
		return nil, fmt.Errorf("%w: %s", ErrFormat, addr)
	case version != AccountIDVersion:
		return nil, fmt.Errorf("%w: %s has version %d", ErrVersion, addr, version)
	case len(payload) != AccountIDLength:
		return nil, fmt.Errorf("%w: %s carries %d bytes", ErrLength, addr, len(payload))
	}
	return payload, nil
}

// EncodeAccountID returns the checksummed address of a 20-byte account ID.
func EncodeAccountID(id []byte) (string, error) {
	if len(id) != AccountIDLength {
		return "", fmt.Errorf("%w: expected %d bytes got %d", ErrLength, AccountIDLength, len(id))
	}
	return translate(base58.CheckEncode(id, AccountIDVersion), &toLedger), nil
}

// IsValid reports whether addr decodes to an account ID.
func IsValid(addr string) bool {
	_, err := DecodeAccountID(addr)
	return err == nil
}

// AccountIDFromPublicKey returns RIPEMD160(SHA256(pubkey)).
func AccountIDFromPublicKey(pubkey []byte) ([]byte, error) {
	if len(pubkey) != PublicKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes got %d", ErrPublicKey, PublicKeyLength, len(pubkey))
	}
	switch pubkey[0] {
	case 0x02, 0x03, 0xED:
	default:
		return nil, fmt.Errorf("%w: unknown key prefix %02X", ErrPublicKey, pubkey[0])
	}
	sha := sha256.Sum256(pubkey)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil), nil
}

// PublicKeyToAddress derives the account address of a public key.
func PublicKeyToAddress(pubkey []byte) (string, error) {
	id, err := AccountIDFromPublicKey(pubkey)
	if err != nil {
		return "", err
	}
	return EncodeAccountID(id)
}

// PublicKeyHexToAddress derives the account address of a hex encoded public key.
func PublicKeyHexToAddress(pubkeyHex string) (string, error) {
	pubkey, err := common.FromHex(pubkeyHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPublicKey, err)
	}
	return PublicKeyToAddress(pubkey)
}
