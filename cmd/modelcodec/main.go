package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/anyswap/xrpl-model-codec/cmd/utils"
	"github.com/anyswap/xrpl-model-codec/log"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "modelcodec"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "encode and decode ledger models as hex")
)

func initApp() {
	app.HideVersion = true // we have a command to print the version
	app.Before = utils.LoadConfig
	app.Commands = []*cli.Command{
		encodeCommand,
		decodeCommand,
		inspectCommand,
		toHexCommand,
		fromHexCommand,
		addressCommand,
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Error("modelcodec failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
