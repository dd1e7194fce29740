package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/carole/inventory"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run an interactive inventory session" }
func (*shellCmd) Usage() string {
	return `inv shell

  Runs an interactive menu session: find, add and list items, show needed
  reorders, and record sales and deliveries against a found item. The
  inventory file is loaded at start and saved back when the session ends.
`
}

func (*shellCmd) SetFlags(_ *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load inventory file: %v\n", err)
		return subcommands.ExitFailure
	}

	s := &session{store: store, r: bufio.NewReader(os.Stdin), w: os.Stdout}
	s.run()

	if err := inventory.SaveStore(*inventoryFile, store); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to save inventory file: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// session is the interactive menu loop, detached from os.Stdin/Stdout so
// tests can drive it.
type session struct {
	store *inventory.Store
	r     *bufio.Reader
	w     io.Writer
}

func (s *session) run() {
	for {
		fmt.Fprintln(s.w)
		fmt.Fprintln(s.w, "Inventory Manager")
		fmt.Fprintln(s.w, "F) Find Item")
		fmt.Fprintln(s.w, "A) Add Item")
		fmt.Fprintln(s.w, "L) List All Items")
		fmt.Fprintln(s.w, "N) Show Needed Reorders")
		fmt.Fprintln(s.w, "Q) Quit")

		choice, ok := s.readLine("Select an option: ")
		if !ok {
			return // EOF ends the session, the caller saves.
		}
		choice = strings.ToUpper(choice)
		if choice == "" {
			fmt.Fprintln(s.w, "Please enter a menu option.")
			continue
		}

		switch choice[0] {
		case 'Q':
			fmt.Fprintln(s.w, "Goodbye!")
			return
		case 'F':
			s.findItem()
		case 'A':
			s.addItem()
		case 'L':
			s.printItems("No items in inventory.", s.store.Items())
		case 'N':
			s.printItems("No items need reordering.", s.store.NeedingReorder())
		default:
			fmt.Fprintln(s.w, "Invalid menu selection.")
		}

		if !s.askToContinue() {
			return
		}
	}
}

// findItem looks an item up and offers the sale/restock/delete submenu on it.
func (s *session) findItem() {
	name, ok := s.readLine("Enter the item name: ")
	if !ok || name == "" {
		fmt.Fprintln(s.w, "Item name cannot be empty.")
		return
	}
	item := s.store.Find(name)
	if item == nil {
		fmt.Fprintln(s.w, "Item not found.")
		return
	}
	s.printItems("", []*inventory.Item{item})

	for {
		fmt.Fprintln(s.w)
		fmt.Fprintln(s.w, "S) Enter Sale")
		fmt.Fprintln(s.w, "R) Reorder")
		fmt.Fprintln(s.w, "D) Delete")
		fmt.Fprintln(s.w, "C) Cancel")

		choice, ok := s.readLine("Select an option: ")
		if !ok {
			return
		}
		choice = strings.ToUpper(choice)
		if choice == "" {
			fmt.Fprintln(s.w, "Please choose a submenu option.")
			continue
		}

		switch choice[0] {
		case 'S':
			q, ok := s.readQuantity("Enter quantity sold: ")
			if !ok {
				return
			}
			item.ReduceStock(q) // q is already validated non-negative
			fmt.Fprintln(s.w, "Sale recorded.")
			fmt.Fprintf(s.w, "Updated stock: %d\n", item.Stock())
			return
		case 'R':
			q, ok := s.readQuantity("Enter reorder quantity: ")
			if !ok {
				return
			}
			item.Restock(q)
			fmt.Fprintln(s.w, "Reorder recorded.")
			fmt.Fprintf(s.w, "Updated stock: %d\n", item.Stock())
			return
		case 'D':
			s.store.Remove(item)
			fmt.Fprintln(s.w, "Item deleted from inventory.")
			return
		case 'C':
			fmt.Fprintln(s.w, "Cancelled.")
			return
		default:
			fmt.Fprintln(s.w, "Invalid submenu selection.")
		}
	}
}

// addItem prompts for the fields of a new item and inserts it.
func (s *session) addItem() {
	var name string
	for {
		var ok bool
		name, ok = s.readLine("Enter the item name: ")
		if !ok {
			return
		}
		if name != "" {
			break
		}
		fmt.Fprintln(s.w, "Item name cannot be empty.")
	}

	var price inventory.Price
	for {
		input, ok := s.readLine("Enter the price: ")
		if !ok {
			return
		}
		p, err := inventory.ParsePrice(input)
		if err != nil {
			fmt.Fprintln(s.w, "Please enter a valid number.")
			continue
		}
		if p.IsNegative() {
			fmt.Fprintln(s.w, "Price must be non-negative.")
			continue
		}
		price = p
		break
	}

	var reorder int
	for {
		input, ok := s.readLine("Enter the reorder amount: ")
		if !ok {
			return
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(s.w, "Please enter a valid whole number.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(s.w, "Reorder amount must be greater than zero.")
			continue
		}
		reorder = n
		break
	}

	item, err := inventory.NewStockedItem(name, price, reorder)
	if err != nil {
		// All inputs were validated above.
		fmt.Fprintf(s.w, "Could not create item: %v\n", err)
		return
	}
	s.store.InsertOrReplace(item)
	fmt.Fprintln(s.w, "Item added to inventory.")
}

// printItems writes a fixed-width table, or the empty message when there
// is nothing to show.
func (s *session) printItems(empty string, items []*inventory.Item) {
	if len(items) == 0 {
		fmt.Fprintln(s.w, empty)
		return
	}
	fmt.Fprintf(s.w, "%-30s %10s %10s %12s\n", "Item", "Price", "In Stock", "Reorder")
	for _, it := range items {
		fmt.Fprintf(s.w, "%-30s %10s %10d %12d\n", it.Name(), it.Price(), it.Stock(), it.ReorderLevel())
	}
}

// readLine prompts and returns the trimmed input, false on EOF.
func (s *session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.w, prompt)
	line, err := s.r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// readQuantity prompts until it gets a non-negative whole number.
func (s *session) readQuantity(prompt string) (int, bool) {
	for {
		input, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(s.w, "Please enter a valid whole number.")
			continue
		}
		if n < 0 {
			fmt.Fprintln(s.w, "Quantity must be non-negative.")
			continue
		}
		return n, true
	}
}

func (s *session) askToContinue() bool {
	for {
		response, ok := s.readLine("Would you like to perform another action? (Y/N): ")
		if !ok {
			return false
		}
		if strings.EqualFold(response, "Y") {
			return true
		}
		if strings.EqualFold(response, "N") {
			return false
		}
		fmt.Fprintln(s.w, "Please respond with Y or N.")
	}
}
