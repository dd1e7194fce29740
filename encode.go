package inventory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header is the fixed first line of the inventory file. It is written
// verbatim on encode and discarded unconditionally on decode.
const Header = "Item Price Stock Reorder"

// DecodeStore reads the whitespace-delimited inventory format and returns
// a sorted Store.
//
// The first line is a header and is always dropped, even malformed. Blank
// lines and rows with fewer than 4 fields are skipped silently. A row with
// 4 fields but an unparseable number is an error. Rows are inserted
// through InsertOrReplace, so the input file does not need to be sorted.
func DecodeStore(r io.Reader) (*Store, error) {
	store := NewStore()
	scanner := bufio.NewScanner(r)

	// Header line. An empty file decodes to an empty store.
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading from input: %w", err)
		}
		return store, nil
	}

	for line := 2; scanner.Scan(); line++ {
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}
		fields := strings.Fields(row)
		if len(fields) < 4 {
			// Truncated rows are dropped, not reported.
			continue
		}
		name := fields[0]
		price, err := ParsePrice(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		stock, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid stock %q: %w", line, fields[2], err)
		}
		reorder, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid reorder level %q: %w", line, fields[3], err)
		}
		store.InsertOrReplace(NewItem(name, price, stock, reorder))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return store, nil
}

// EncodeItem writes a single item as one row of the inventory format.
func EncodeItem(w io.Writer, item *Item) error {
	_, err := fmt.Fprintf(w, "%s %s %d %d\n", item.Name(), item.Price(), item.Stock(), item.ReorderLevel())
	if err != nil {
		return fmt.Errorf("failed to write item %q: %w", item.Name(), err)
	}
	return nil
}

// EncodeStore persists the store to w: the header, then one row per item
// in collection order. Prices carry exactly two decimal digits.
func EncodeStore(w io.Writer, store *Store) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for item := range store.All() {
		if err := EncodeItem(w, item); err != nil {
			return err
		}
	}
	return nil
}
