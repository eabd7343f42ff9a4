package address

// Well known accounts
const (
	ACCOUNT_ZERO = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	ACCOUNT_ONE  = "rrrrrrrrrrrrrrrrrrrrBZbvji"
	ROOT         = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
)

const (
	// ALPHABET is the ledger's base58 alphabet.
	ALPHABET = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

	// bitcoinAlphabet is the alphabet the base58 package encodes with.
	bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// AccountIDVersion prefixes encoded account IDs.
	AccountIDVersion byte = 0

	// AccountIDLength is the payload size of an account ID.
	AccountIDLength = 20

	// PublicKeyLength is the size of a compressed secp256k1 or
	// 0xED prefixed ed25519 public key.
	PublicKeyLength = 33
)
