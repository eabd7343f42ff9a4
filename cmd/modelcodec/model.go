package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/anyswap/xrpl-model-codec/cmd/utils"
	"github.com/anyswap/xrpl-model-codec/codec"
	"github.com/anyswap/xrpl-model-codec/log"
	"github.com/anyswap/xrpl-model-codec/params"
	"github.com/anyswap/xrpl-model-codec/schema"
	"github.com/anyswap/xrpl-model-codec/terminal"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	modelFlags = []cli.Flag{
		utils.SchemaFlag,
		utils.ModelFlag,
	}

	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "encode a JSON object as model hex",
		ArgsUsage: "[<json>|-]",
		Description: `
encode the JSON object given as argument, or read from stdin when the
argument is '-' or missing, with the model declared in the schema.
`,
		Flags: modelFlags,
	}

	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "decode model hex into a JSON object",
		ArgsUsage: "<hex>",
		Flags:     modelFlags,
	}

	inspectCommand = &cli.Command{
		Action:    inspect,
		Name:      "inspect",
		Usage:     "print every field of model hex with its offset",
		ArgsUsage: "<hex>",
		Flags:     append(modelFlags, utils.NoColorFlag),
	}
)

// loadModel resolves the schema and model name from flags, falling back
// to the [Schema] section of the config file.
func loadModel(ctx *cli.Context) (*schema.Schema, string, error) {
	schemaConfig := params.GetSchemaConfig()
	path := ctx.String(utils.SchemaFlag.Name)
	modelName := ctx.String(utils.ModelFlag.Name)
	if schemaConfig != nil {
		if path == "" {
			path = schemaConfig.Dir
		}
		if path == "" {
			path = schemaConfig.File
		}
		if modelName == "" {
			modelName = schemaConfig.Default
		}
	}
	if path == "" {
		return nil, "", errors.New("must specify schema by '--schema' or config [Schema]")
	}
	if modelName == "" {
		return nil, "", errors.New("must specify model by '--model' or config [Schema] Default")
	}
	var (
		s   *schema.Schema
		err error
	)
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		s, err = schema.LoadDir(path)
	} else {
		s, err = schema.LoadFile(path)
	}
	if err != nil {
		return nil, "", err
	}
	log.Debug("schema loaded", "path", path, "models", s.Names(), "model", modelName)
	return s, modelName, nil
}

func singleArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		_ = cli.ShowCommandHelp(ctx, ctx.Command.Name)
		return "", fmt.Errorf("invalid arguments: %q", ctx.Args().Slice())
	}
	return strings.TrimSpace(ctx.Args().First()), nil
}

func encode(ctx *cli.Context) error {
	s, modelName, err := loadModel(ctx)
	if err != nil {
		return err
	}
	var input []byte
	switch arg := ctx.Args().First(); {
	case ctx.NArg() > 1:
		return fmt.Errorf("invalid arguments: %q", ctx.Args().Slice())
	case arg == "" || arg == "-":
		input, err = ioutil.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
	default:
		input = []byte(arg)
	}
	record, err := s.FromJSON(modelName, input)
	if err != nil {
		return err
	}
	hex, err := codec.EncodeModel(record)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hex)
	return nil
}

func decode(ctx *cli.Context) error {
	hex, err := singleArg(ctx)
	if err != nil {
		return err
	}
	s, modelName, err := loadModel(ctx)
	if err != nil {
		return err
	}
	factory, err := s.Factory(modelName)
	if err != nil {
		return err
	}
	m, err := codec.DecodeModel(hex, factory)
	if err != nil {
		return err
	}
	out, err := m.(*schema.Record).ToJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}

func inspect(ctx *cli.Context) error {
	hex, err := singleArg(ctx)
	if err != nil {
		return err
	}
	s, modelName, err := loadModel(ctx)
	if err != nil {
		return err
	}
	factory, err := s.Factory(modelName)
	if err != nil {
		return err
	}
	if ctx.Bool(utils.NoColorFlag.Name) {
		color.NoColor = true
	}
	_, segments, err := codec.Inspect(hex, factory)
	if printErr := terminal.Fprintln(ctx.App.Writer, segments, terminal.Default|terminal.Indent); printErr != nil {
		return printErr
	}
	if err != nil {
		terminal.PrintError(ctx.App.Writer, err)
		return err
	}
	return nil
}
