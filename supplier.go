package inventory

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	A supplier catalog is any JSON document that contains a list of product
	entries, e.g.

	{
	    "catalog": {
	        "products": [
	            {"sku": "Widget", "unit_price": 9.99, "reorder": 10},
	            {"sku": "Gadget", "unit_price": "4,50", "reorder": 5}
	        ]
	    }
	}

	Suppliers never agree on a schema, so the Catalog struct carries the
	jsonpath of each field instead of hardcoding one layout.
*/

// Catalog describes where to find items inside a supplier's JSON document.
type Catalog struct {
	Items   string // jsonpath to the list of product entries, e.g. "$.catalog.products"
	Name    string // jsonpath to the item name within one entry, e.g. "$.sku"
	Price   string // jsonpath to the unit price within one entry
	Reorder string // jsonpath to the reorder level within one entry
	Stock   string // optional jsonpath to the stock count; empty means 2x the reorder level
}

// FetchCatalog retrieves a supplier catalog from addr and extracts its
// entries as items, ready to be inserted into a store.
func FetchCatalog(client *http.Client, addr string, c Catalog) ([]*Item, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving catalog %q: %w", addr, err)
	}
	return extractCatalog(jobj, c)
}

// extractCatalog walks a decoded JSON document with the catalog's jsonpath
// queries and builds one item per entry.
func extractCatalog(jobj any, c Catalog) ([]*Item, error) {
	jval, err := jsonpath.Get(c.Items, jobj)
	if err != nil {
		return nil, fmt.Errorf("error querying entries: %q %w", c.Items, err)
	}
	entries, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error querying entries: %q is not a list but %T", c.Items, jval)
	}

	items := make([]*Item, 0, len(entries))
	for i, entry := range entries {
		name, err := jstring(entry, c.Name)
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid name: %w", i, err)
		}
		price, err := jprice(entry, c.Price)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, name, err)
		}
		reorder, err := jint(entry, c.Reorder)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): invalid reorder level: %w", i, name, err)
		}

		if c.Stock == "" {
			item, err := NewStockedItem(name, price, reorder)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			items = append(items, item)
			continue
		}
		stock, err := jint(entry, c.Stock)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): invalid stock: %w", i, name, err)
		}
		items = append(items, NewItem(name, price, stock, reorder))
	}
	return items, nil
}

// jget resolves a jsonpath on an entry, unwrapping single-element lists.
func jget(entry any, path string) (any, error) {
	jval, err := jsonpath.Get(path, entry)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func jstring(entry any, path string) (string, error) {
	jval, err := jget(entry, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%q is not a usable string: %v", path, jval)
	}
	return strings.TrimSpace(s), nil
}

func jprice(entry any, path string) (Price, error) {
	jval, err := jget(entry, path)
	if err != nil {
		return Price{}, err
	}
	if val, ok := jval.(float64); ok {
		return P(val), nil
	}
	// sometimes, suppliers return the value as a string, with a comma for good measure
	sval, ok := jval.(string)
	if !ok {
		return Price{}, fmt.Errorf("%q is neither a number nor a string: %v", path, jval)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	return ParsePrice(sval)
}

func jint(entry any, path string) (int, error) {
	jval, err := jget(entry, path)
	if err != nil {
		return 0, err
	}
	switch v := jval.(type) {
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, fmt.Errorf("%q is neither a number nor a string: %v", path, jval)
	}
}
