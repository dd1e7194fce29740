package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restockCmd struct {
	name     string
	quantity int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "record a received reorder for an item" }
func (*restockCmd) Usage() string {
	return `inv restock -name <name> -q <quantity>

  Records the delivery of some reordered units of an item, adding them to
  the stock.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.IntVar(&c.quantity, "q", 0, "Quantity received (required)")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	item := store.Find(c.name)
	if item == nil {
		fmt.Fprintf(os.Stderr, "Item %q not found.\n", c.name)
		return subcommands.ExitFailure
	}

	if err := item.Restock(c.quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Reorder recorded. Updated stock of %q: %d\n", item.Name(), item.Stock())
	return subcommands.ExitSuccess
}
