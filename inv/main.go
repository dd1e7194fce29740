package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/carole/inventory/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: `COMP_INSTALL=1 inv` installs it. When invoked by
	// the shell for completion, Complete never returns.
	completer := &complete.Command{
		Flags: map[string]complete.Predictor{
			"inventory-file": predict.Files("*.txt"),
			"currency":       predict.Set{"USD", "EUR", "GBP"},
		},
		Sub: map[string]*complete.Command{
			"add":      {Flags: map[string]complete.Predictor{"name": predict.Nothing, "price": predict.Nothing, "reorder": predict.Nothing}},
			"find":     {},
			"list":     {},
			"reorders": {},
			"remove":   {},
			"sell":     {Flags: map[string]complete.Predictor{"name": predict.Nothing, "q": predict.Nothing}},
			"restock":  {Flags: map[string]complete.Predictor{"name": predict.Nothing, "q": predict.Nothing}},
			"fmt":      {},
			"import":   {Flags: map[string]complete.Predictor{"url": predict.Nothing, "items": predict.Nothing, "name": predict.Nothing, "price": predict.Nothing, "reorder": predict.Nothing, "stock": predict.Nothing}},
			"shell":    {},
			"assist":   {},
			"topic":    {Args: predict.Set{"readme", "file-format", "reordering", "importing", "*"}},
		},
	}
	completer.Complete("inv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
