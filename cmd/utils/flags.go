package utils

import (
	"github.com/anyswap/xrpl-model-codec/log"
	"github.com/anyswap/xrpl-model-codec/params"
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}

	// SchemaFlag --schema
	SchemaFlag = &cli.StringFlag{
		Name:    "schema",
		Aliases: []string{"s"},
		Usage:   "schema file or directory of *.toml schema files",
	}
	// ModelFlag --model
	ModelFlag = &cli.StringFlag{
		Name:    "model",
		Aliases: []string{"m"},
		Usage:   "model name declared in the schema",
	}
	// LittleFlag --little
	LittleFlag = &cli.BoolFlag{
		Name:  "little",
		Usage: "byte reversed (little endian) fixed width encoding",
	}
	// MaxLengthFlag --maxlen
	MaxLengthFlag = &cli.IntFlag{
		Name:  "maxlen",
		Usage: "max string length in bytes of a varString value",
	}
	// NoColorFlag --nocolor
	NoColorFlag = &cli.BoolFlag{
		Name:  "nocolor",
		Usage: "disable colored inspect output",
	}

	// CommonLogFlags log flags of every command
	CommonLogFlags = []cli.Flag{
		VerbosityFlag,
		JSONFormatFlag,
		ColorFormatFlag,
	}
)

// SetLogger set log level, json format, color format. Flags given on
// the command line take precedence over the [Log] section of the config.
func SetLogger(ctx *cli.Context) {
	logLevel := uint32(ctx.Uint64(VerbosityFlag.Name))
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	if logConfig := params.GetConfig().Log; logConfig != nil {
		if !ctx.IsSet(VerbosityFlag.Name) && logConfig.Verbosity != nil {
			logLevel = *logConfig.Verbosity
		}
		if !ctx.IsSet(JSONFormatFlag.Name) {
			jsonFormat = logConfig.JSONFormat
		}
		if !ctx.IsSet(ColorFormatFlag.Name) {
			colorFormat = logConfig.ColorFormat
		}
	}
	log.SetLogger(logLevel, jsonFormat, colorFormat)
}

// GetConfigFilePath specified by `--config`
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// LoadConfig loads the config file if one is given, then sets the logger.
func LoadConfig(ctx *cli.Context) error {
	if configFile := GetConfigFilePath(ctx); configFile != "" {
		if _, err := params.LoadConfig(configFile); err != nil {
			return err
		}
	}
	SetLogger(ctx)
	return nil
}
