package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/carole/inventory/renderer"
	"github.com/google/subcommands"
)

type findCmd struct{}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "look an item up by name" }
func (*findCmd) Usage() string {
	return `inv find <name>

  Looks an item up by name, case-insensitively, and prints it.
`
}

func (*findCmd) SetFlags(_ *flag.FlagSet) {}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item name is expected.")
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	item := store.Find(f.Arg(0))
	if item == nil {
		fmt.Fprintf(os.Stderr, "Item %q not found.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Item(item, *displayCurrency))
	return subcommands.ExitSuccess
}
