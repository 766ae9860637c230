package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Serve   ServeCmd         `cmd:"" help:"Run the assistant WebSocket server"`
	Play    PlayCmd          `cmd:"" help:"Play an interactive table against advisor-driven seats"`
	Odds    OddsCmd          `cmd:"" help:"Analyze a single hand: category, equity, outs and advice"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerglasses"),
		kong.Description("Real-time poker decision assistant"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
