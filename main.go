package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BeerFinder/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Beer Finder"), kong.Description("BeerFinder helps bar guests find the beer they are after."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
