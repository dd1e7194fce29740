package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/carole/inventory/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all items in the inventory" }
func (*listCmd) Usage() string {
	return `inv list

  Lists every item in the inventory, sorted by name.
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Items("Inventory", store.Items(), *displayCurrency))
	return subcommands.ExitSuccess
}
