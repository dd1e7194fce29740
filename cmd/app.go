// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/carole/inventory"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "inventory")
	c.Register(&findCmd{}, "inventory")
	c.Register(&listCmd{}, "inventory")
	c.Register(&reordersCmd{}, "inventory")
	c.Register(&removeCmd{}, "inventory")

	c.Register(&sellCmd{}, "movements")
	c.Register(&restockCmd{}, "movements")

	c.Register(&fmtCmd{}, "file")
	c.Register(&importCmd{}, "file")

	c.Register(&shellCmd{}, "session")
	c.Register(&assistCmd{}, "session")
	c.Register(&topicCmd{}, "session")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "inventory-data.txt", "Path to the inventory data file")
var displayCurrency = flag.String("currency", "USD", "3-letter currency code used to display prices")

// loadStore reads the store from the app inventory file. A missing file is
// an empty store.
func loadStore() (*inventory.Store, error) {
	return inventory.LoadStore(*inventoryFile)
}

// saveStore persists the store back to the app inventory file.
func saveStore(store *inventory.Store) subcommands.ExitStatus {
	if err := inventory.SaveStore(*inventoryFile, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory file %q: %v\n", *inventoryFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal and prints it, falling
// back to the raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
