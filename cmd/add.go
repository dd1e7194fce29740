package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/carole/inventory"
	"github.com/google/subcommands"
)

type addCmd struct {
	name    string
	price   string
	reorder int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the inventory" }
func (*addCmd) Usage() string {
	return `inv add -name <name> -price <price> -reorder <level>

  Adds a new item to the inventory:
  - name: The item name (e.g., "Widget"). Unique, case-insensitively.
  - price: The unit price as a decimal (e.g., "9.99").
  - reorder: The stock level below which the item needs reordering.

  The item starts with a stock of twice its reorder level. Adding a name
  that already exists replaces the previous item.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.StringVar(&c.price, "price", "", "Unit price, e.g. 9.99 (required)")
	f.IntVar(&c.reorder, "reorder", 0, "Reorder level, must be positive (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price == "" || c.reorder == 0 {
		fmt.Fprintln(os.Stderr, "Error: -name, -price and -reorder flags are required.")
		return subcommands.ExitUsageError
	}

	price, err := inventory.ParsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	item, err := inventory.NewStockedItem(c.name, price, c.reorder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	store.InsertOrReplace(item)
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %q with stock %d.\n", item.Name(), item.Stock())
	return subcommands.ExitSuccess
}
