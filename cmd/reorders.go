package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/carole/inventory/renderer"
	"github.com/google/subcommands"
)

type reordersCmd struct{}

func (*reordersCmd) Name() string     { return "reorders" }
func (*reordersCmd) Synopsis() string { return "show the items needing a reorder" }
func (*reordersCmd) Usage() string {
	return `inv reorders

  Shows the items whose stock fell below their reorder level, with the
  quantity to order.
`
}

func (*reordersCmd) SetFlags(_ *flag.FlagSet) {}

func (c *reordersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Reorders(store.NeedingReorder(), *displayCurrency))
	return subcommands.ExitSuccess
}
