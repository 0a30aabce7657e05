package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/coffeedocs/cmd/coffeedocs/commands"
	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	parser, err := commands.NewParser(cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	global := &commands.Global{Logger: slog.Default(), Stdout: os.Stdout}
	if err := ctx.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
