package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct {
	name     string
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale against an item" }
func (*sellCmd) Usage() string {
	return `inv sell -name <name> -q <quantity>

  Records the sale of some units of an item. The stock never goes
  negative: selling more than the current stock leaves it at zero.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.IntVar(&c.quantity, "q", 0, "Quantity sold (required)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := item.ReduceStock(c.quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Sale recorded. Updated stock of %q: %d\n", item.Name(), item.Stock())
	return subcommands.ExitSuccess
}
