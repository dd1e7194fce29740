package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStore_MissingFileIsEmptyStore(t *testing.T) {
	store, err := LoadStore(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err != nil {
		t.Fatalf("a missing file must not be an error, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestLoadStore_PropagatesParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory-data.txt")
	content := "Item Price Stock Reorder\nGadget abc 5 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStore(path); err == nil {
		t.Fatal("expected a parse error, got none")
	}
}

func TestSaveStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory-data.txt")

	store := NewStore()
	store.InsertOrReplace(NewItem("Banana", P(0.5), 20, 10))
	store.InsertOrReplace(NewItem("apple", P(1.25), 2, 5))

	if err := SaveStore(path, store); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadStore(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", loaded.Len())
	}
	apple := loaded.Find("apple")
	if apple == nil || !apple.Price().Equal(P(1.25)) || apple.Stock() != 2 || apple.ReorderLevel() != 5 {
		t.Errorf("apple did not survive the round trip: %+v", apple)
	}
}

func TestSaveStore_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory-data.txt")
	if err := os.WriteFile(path, []byte("Item Price Stock Reorder\nOld 1.00 1 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore()
	store.InsertOrReplace(NewItem("New", P(2), 4, 2))
	if err := SaveStore(path, store); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 1 || loaded.Find("Old") != nil {
		t.Error("save must overwrite the previous content unconditionally")
	}
}
