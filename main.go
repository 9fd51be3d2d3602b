package main

import (
	"github.com/alecthomas/kong"

	"github.com/lijunzh/renamer/cmd"
)

var Version = "dev"

type CLI struct {
	Rename cmd.RenameCmd `cmd:"" default:"withargs" help:"Rename files matching a regex pattern using a placeholder template"`

	Version kong.VersionFlag `short:"v" help:"Print version and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("renamer"),
		kong.Description("Bulk file renamer: match file names with named capture groups and build new names from a template."),
		kong.Vars{"version": Version},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
