package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/carole/inventory"
	"github.com/google/subcommands"
)

type importCmd struct {
	url     string
	items   string
	name    string
	price   string
	reorder string
	stock   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge a supplier JSON catalog into the inventory" }
func (*importCmd) Usage() string {
	return `inv import -url <url> -items <jsonpath> -name <jsonpath> -price <jsonpath> -reorder <jsonpath> [-stock <jsonpath>]

  Fetches a supplier catalog in JSON and merges its entries into the
  inventory. Each -items entry is read with the field jsonpaths; entries
  matching an existing item name replace it, others are inserted in order.
  Without -stock, imported items start with twice their reorder level.

Usage Examples:
# Import a catalog shaped {"catalog":{"products":[{"sku":...,"unit_price":...,"reorder":...}]}}
$ inv import -url https://supplier.example/catalog.json \
    -items '$.catalog.products' -name '$.sku' -price '$.unit_price' -reorder '$.reorder'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Catalog URL (required)")
	f.StringVar(&c.items, "items", "", "jsonpath to the list of product entries (required)")
	f.StringVar(&c.name, "name", "$.name", "jsonpath to the item name within one entry")
	f.StringVar(&c.price, "price", "$.price", "jsonpath to the unit price within one entry")
	f.StringVar(&c.reorder, "reorder", "$.reorder", "jsonpath to the reorder level within one entry")
	f.StringVar(&c.stock, "stock", "", "jsonpath to the stock count; empty defaults to twice the reorder level")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" || c.items == "" {
		fmt.Fprintln(os.Stderr, "Error: -url and -items flags are required.")
		return subcommands.ExitUsageError
	}

	catalog := inventory.Catalog{
		Items:   c.items,
		Name:    c.name,
		Price:   c.price,
		Reorder: c.reorder,
		Stock:   c.stock,
	}

	items, err := inventory.FetchCatalog(inventory.Daily(), c.url, catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, item := range items {
		store.InsertOrReplace(item)
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d items, inventory now holds %d.\n", len(items), store.Len())
	return subcommands.ExitSuccess
}
