package inventory

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a caller mistake on a stock mutation or an
// interactive construction, typically a negative quantity.
var ErrInvalidArgument = errors.New("invalid argument")

// Item is a single stock-keeping record. Name, price and reorder level are
// fixed at creation, only the stock count changes over a session.
type Item struct {
	name    string
	price   Price
	stock   int
	reorder int
}

// NewItem creates an item from already trusted values, typically a row of
// the inventory file. It does not validate: persisted data is taken as is,
// only the mutators below enforce the stock invariant.
func NewItem(name string, price Price, stock, reorder int) *Item {
	return &Item{name: name, price: price, stock: stock, reorder: reorder}
}

// NewStockedItem creates an item for interactive addition, with an initial
// stock of twice the reorder level.
func NewStockedItem(name string, price Price, reorder int) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrInvalidArgument)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price %s is negative", ErrInvalidArgument, price)
	}
	if reorder <= 0 {
		return nil, fmt.Errorf("%w: reorder level must be positive, got %d", ErrInvalidArgument, reorder)
	}
	return NewItem(name, price, 2*reorder, reorder), nil
}

func (i *Item) Name() string      { return i.name }
func (i *Item) Price() Price      { return i.price }
func (i *Item) Stock() int        { return i.stock }
func (i *Item) ReorderLevel() int { return i.reorder }

// ReduceStock records a sale of n units. Selling more than the current
// stock is not an error, the stock is clamped to zero.
func (i *Item) ReduceStock(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: sale quantity %d is negative", ErrInvalidArgument, n)
	}
	i.stock = max(0, i.stock-n)
	return nil
}

// Restock records the delivery of n reordered units.
func (i *Item) Restock(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: restock quantity %d is negative", ErrInvalidArgument, n)
	}
	i.stock += n
	return nil
}

// NeedsReorder reports whether the stock fell below the reorder level.
func (i *Item) NeedsReorder() bool { return i.stock < i.reorder }
