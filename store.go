package inventory

import (
	"iter"
	"slices"
	"strings"
)

// compareNames is the single comparator used for ordering and lookup:
// case-insensitive lexicographic on the item name. Every mutation of the
// store must keep the collection sorted by it.
func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Store holds the whole inventory in memory.
//
// In a Store items are always sorted by case-insensitive name, with no two
// items comparing equal. Items handed out by Find or All are shared
// handles: mutating their stock mutates the store's copy.
type Store struct {
	items []*Item
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{items: make([]*Item, 0)}
}

// Len returns the number of items in the store.
func (s *Store) Len() int { return len(s.items) }

// Find returns the item whose name matches case-insensitively, or nil.
// It is a binary search, relying on the sort invariant.
func (s *Store) Find(name string) *Item {
	i, found := slices.BinarySearchFunc(s.items, name, func(it *Item, target string) int {
		return compareNames(it.Name(), target)
	})
	if !found {
		return nil
	}
	return s.items[i]
}

// InsertOrReplace adds an item at its sorted position, or replaces in
// place the item with an equal-comparing name. This is the only way items
// enter the store, interactively or from a file, so the sort invariant
// holds whatever the source order was.
func (s *Store) InsertOrReplace(item *Item) {
	i, found := slices.BinarySearchFunc(s.items, item.Name(), func(it *Item, target string) int {
		return compareNames(it.Name(), target)
	})
	if found {
		s.items[i] = item
		return
	}
	s.items = slices.Insert(s.items, i, item)
}

// Remove deletes the item from the store. Removing an item that is not
// there is a no-op.
func (s *Store) Remove(item *Item) {
	for i, it := range s.items {
		if it == item || compareNames(it.Name(), item.Name()) == 0 {
			s.items = slices.Delete(s.items, i, i+1)
			return
		}
	}
}

// Items returns a snapshot of the collection in sorted order. The slice is
// independent, the items are shared.
func (s *Store) Items() []*Item {
	return slices.Clone(s.items)
}

// NeedingReorder returns the items whose stock fell below their reorder
// level, in sorted order.
func (s *Store) NeedingReorder() []*Item {
	var needs []*Item
	for _, it := range s.items {
		if it.NeedsReorder() {
			needs = append(needs, it)
		}
	}
	return needs
}

// All iterates over items in sorted order, optionally keeping only those
// accepted by one of the filters.
func (s *Store) All(filters ...func(*Item) bool) iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for _, it := range s.items {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(it) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}
