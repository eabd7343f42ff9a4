package codec

import (
	"strconv"
	"strings"

	"github.com/anyswap/xrpl-model-codec/common"
	"github.com/anyswap/xrpl-model-codec/xfl"
)

const zeroXFL = "0000000000000000"

// XflToHex encodes v as 16 hex digits. Zero is always all zeros.
func XflToHex(v xfl.Value, little bool) string {
	if v.IsZero() {
		return zeroXFL
	}
	hex := common.PadLeft(strings.ToUpper(strconv.FormatUint(v.Uint64(), 16)), 16)
	if little {
		return common.FlipHex(hex)
	}
	return hex
}

// HexToXfl decodes 16 hex digits.
func HexToXfl(hex string, little bool) (xfl.Value, error) {
	if err := checkWidth(hex, 16, "xfl"); err != nil {
		return xfl.Zero, err
	}
	if common.IsZeroHex(hex) {
		return xfl.Zero, nil
	}
	if little {
		hex = common.FlipHex(hex)
	}
	u, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return xfl.Zero, &DecodeError{Err: ErrMalformed}
	}
	v, err := xfl.FromUint64(u)
	if err != nil {
		return xfl.Zero, &DecodeError{Err: err}
	}
	return v, nil
}
