package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete an item from the inventory" }
func (*removeCmd) Usage() string {
	return `inv remove <name>

  Deletes an item from the inventory, by case-insensitive name.
`
}

func (*removeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	store.Remove(item)
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted %q from the inventory.\n", item.Name())
	return subcommands.ExitSuccess
}
