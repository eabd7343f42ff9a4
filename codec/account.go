package codec

import (
	"github.com/anyswap/xrpl-model-codec/address"
	"github.com/anyswap/xrpl-model-codec/common"
)

// XRPAddressToHex encodes the account ID behind a checksummed address.
func XRPAddressToHex(value string) (string, error) {
	id, err := address.DecodeAccountID(value)
	if err != nil {
		return "", err
	}
	return common.ToHex(id), nil
}

// HexToXRPAddress re-encodes a 20 byte account ID as its address.
func HexToXRPAddress(hex string) (string, error) {
	if err := checkWidth(hex, 40, "xrpAddress"); err != nil {
		return "", err
	}
	id, err := common.FromHex(hex)
	if err != nil {
		return "", &DecodeError{Err: ErrMalformed}
	}
	return address.EncodeAccountID(id)
}
