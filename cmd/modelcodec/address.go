package main

import (
	"fmt"

	"github.com/anyswap/xrpl-model-codec/address"
	"github.com/anyswap/xrpl-model-codec/common"
	"github.com/urfave/cli/v2"
)

var (
	addressCommand = &cli.Command{
		Action:    convertAddress,
		Name:      "address",
		Usage:     "convert between public key, address and account ID",
		ArgsUsage: "<pubkey|address|accountID>",
		Description: `
a 33 byte public key hex prints its address, a 20 byte account ID hex
prints its address, and an address prints its account ID hex.
`,
	}
)

func convertAddress(ctx *cli.Context) error {
	arg, err := singleArg(ctx)
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	switch {
	case len(arg) == address.PublicKeyLength*2 && common.IsHex(arg):
		addr, err := address.PublicKeyHexToAddress(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "address: %v\n", addr)
	case len(arg) == address.AccountIDLength*2 && common.IsHex(arg):
		id, _ := common.FromHex(arg)
		addr, err := address.EncodeAccountID(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "address: %v\n", addr)
	default:
		id, err := address.DecodeAccountID(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "accountID: %v\n", common.ToHex(id))
	}
	return nil
}
