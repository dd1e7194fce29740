// Package renderer builds the markdown reports printed by the `inv`
// command-line tool.
package renderer

import (
	"fmt"
	"strings"

	"github.com/carole/inventory"
)

// Items renders a list of items as a markdown table. Prices are displayed
// in the given currency, and items below their reorder level are flagged.
func Items(title string, items []*inventory.Item, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(items) == 0 {
		fmt.Fprintln(&b, "No items.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Item | Price | In Stock | Reorder At | Low |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|:---:|")
	for _, it := range items {
		low := " "
		if it.NeedsReorder() {
			low = "X"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %s |\n",
			it.Name(),
			it.Price().Format(currency),
			it.Stock(),
			it.ReorderLevel(),
			low,
		)
	}
	return b.String()
}

// Item renders a single item as a one-row table.
func Item(it *inventory.Item, currency string) string {
	return Items(it.Name(), []*inventory.Item{it}, currency)
}

// Reorders renders the restock shopping list: every item below its reorder
// level with the quantity to order to come back to twice that level.
func Reorders(items []*inventory.Item, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Needed Reorders\n\n")
	if len(items) == 0 {
		fmt.Fprintln(&b, "No items need reordering.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Item | In Stock | Reorder At | To Order | Unit Price |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, it := range items {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %s |\n",
			it.Name(),
			it.Stock(),
			it.ReorderLevel(),
			2*it.ReorderLevel()-it.Stock(),
			it.Price().Format(currency),
		)
	}
	return b.String()
}
