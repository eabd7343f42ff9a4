package main

import (
	"fmt"

	"github.com/anyswap/xrpl-model-codec/cmd/utils"
	"github.com/anyswap/xrpl-model-codec/codec"
	"github.com/urfave/cli/v2"
)

var (
	typeFlag = &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "field type, e.g. uint16, varString, xfl, currency, xrpAddress",
		Required: true,
	}

	scalarFlags = []cli.Flag{
		typeFlag,
		utils.LittleFlag,
		utils.MaxLengthFlag,
	}

	toHexCommand = &cli.Command{
		Action:    toHex,
		Name:      "tohex",
		Usage:     "encode a single field value",
		ArgsUsage: "<value>",
		Flags:     scalarFlags,
	}

	fromHexCommand = &cli.Command{
		Action:    fromHex,
		Name:      "fromhex",
		Usage:     "decode a single field value",
		ArgsUsage: "<hex>",
		Flags:     scalarFlags,
	}
)

func scalarField(ctx *cli.Context) (codec.Field, error) {
	t, err := codec.ParseFieldType(ctx.String(typeFlag.Name))
	if err != nil {
		return codec.Field{}, err
	}
	return codec.Field{
		Name:            t.String(),
		Type:            t,
		MaxStringLength: ctx.Int(utils.MaxLengthFlag.Name),
		Little:          ctx.Bool(utils.LittleFlag.Name),
	}, nil
}

func toHex(ctx *cli.Context) error {
	value, err := singleArg(ctx)
	if err != nil {
		return err
	}
	f, err := scalarField(ctx)
	if err != nil {
		return err
	}
	hex, err := codec.EncodeScalar(f, value)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hex)
	return nil
}

func fromHex(ctx *cli.Context) error {
	hex, err := singleArg(ctx)
	if err != nil {
		return err
	}
	f, err := scalarField(ctx)
	if err != nil {
		return err
	}
	v, err := codec.DecodeScalar(f, hex)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, v)
	return nil
}
