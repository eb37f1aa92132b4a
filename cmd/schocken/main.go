package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Debug    bool             `help:"Enable debug logging"`
	NoColor  bool             `name:"no-color" help:"Disable colored output"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play rounds of Schocken between bots"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many games and report loss rates"`
	Hands    HandsCmd         `cmd:"" help:"List every hand with its chip value"`
	History  HistoryCmd       `cmd:"" help:"Work with saved game histories"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("schocken"),
		kong.Description("Schocken dice game played between bots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	setupStyles(cli.NoColor)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
