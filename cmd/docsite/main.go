package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/marzneshin/docsite/cmd/docsite/commands"
	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
	"github.com/marzneshin/docsite/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docsite"),
		kong.Description("Bilingual documentation site for Marzneshin."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Out: os.Stdout, Err: os.Stderr}
	if err := ctx.Run(global, &cli); err != nil {
		adapter := foundationerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		adapter.Log(err)
		fmt.Fprintln(os.Stderr, adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}
}
