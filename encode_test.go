package inventory

import (
	"strings"
	"testing"
)

func TestDecodeStore(t *testing.T) {
	input := "Item Price Stock Reorder\nWidget 9.99 5 10\n"

	store, err := DecodeStore(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}

	item := store.Find("Widget")
	if item == nil {
		t.Fatal("Widget not found")
	}
	if !item.Price().Equal(P(9.99)) {
		t.Errorf("price = %s, want 9.99", item.Price())
	}
	if item.Stock() != 5 || item.ReorderLevel() != 10 {
		t.Errorf("stock/reorder = %d/%d, want 5/10", item.Stock(), item.ReorderLevel())
	}

	needs := store.NeedingReorder()
	if len(needs) != 1 || needs[0] != item {
		t.Errorf("NeedingReorder() = %v, want the Widget (5 < 10)", needs)
	}
}

func TestDecodeStore_Leniency(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantLen   int
		wantErr   bool
		errSubstr string
	}{
		{
			name:    "empty input is an empty store",
			input:   "",
			wantLen: 0,
		},
		{
			name:    "header only",
			input:   "Item Price Stock Reorder\n",
			wantLen: 0,
		},
		{
			name:    "malformed header is still discarded",
			input:   "whatever nonsense\nWidget 9.99 5 10\n",
			wantLen: 1,
		},
		{
			name:    "blank lines are skipped",
			input:   "Item Price Stock Reorder\n\n   \nWidget 9.99 5 10\n",
			wantLen: 1,
		},
		{
			name:    "short rows are dropped silently",
			input:   "Item Price Stock Reorder\nOnlyTwo Fields\nWidget 9.99 5 10\n",
			wantLen: 1,
		},
		{
			name:    "runs of whitespace split fine",
			input:   "Item Price Stock Reorder\nWidget\t  9.99   5\t10\n",
			wantLen: 1,
		},
		{
			name:      "non-numeric price is fatal",
			input:     "Item Price Stock Reorder\nGadget abc 5 10\n",
			wantErr:   true,
			errSubstr: "invalid price",
		},
		{
			name:      "non-numeric stock is fatal",
			input:     "Item Price Stock Reorder\nGadget 9.99 five 10\n",
			wantErr:   true,
			errSubstr: "invalid stock",
		},
		{
			name:      "non-numeric reorder level is fatal",
			input:     "Item Price Stock Reorder\nGadget 9.99 5 ten\n",
			wantErr:   true,
			errSubstr: "invalid reorder level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := DecodeStore(strings.NewReader(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				if !strings.Contains(err.Error(), tc.errSubstr) {
					t.Errorf("error %q does not mention %q", err, tc.errSubstr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if store.Len() != tc.wantLen {
				t.Errorf("Len() = %d, want %d", store.Len(), tc.wantLen)
			}
		})
	}
}

func TestDecodeStore_SortsUnsortedInput(t *testing.T) {
	// The file does not need to be sorted: rows go through the same
	// sorted insertion as interactive adds.
	input := "Item Price Stock Reorder\npear 1.00 1 1\nApple 1.00 1 1\nbanana 1.00 1 1\n"

	store, err := DecodeStore(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	items := store.Items()
	want := []string{"Apple", "banana", "pear"}
	for i, name := range want {
		if items[i].Name() != name {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Name(), name)
		}
	}
}

func TestEncodeStore(t *testing.T) {
	store := NewStore()
	store.InsertOrReplace(NewItem("Banana", P(0.5), 20, 10))
	store.InsertOrReplace(NewItem("apple", P(1.25), 2, 5))

	var b strings.Builder
	if err := EncodeStore(&b, store); err != nil {
		t.Fatal(err)
	}

	// Case-insensitive sort puts "apple" before "Banana", prices carry
	// exactly two decimals.
	want := "Item Price Stock Reorder\napple 1.25 2 5\nBanana 0.50 20 10\n"
	if b.String() != want {
		t.Errorf("encoded:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestEncodeStore_RoundTrip(t *testing.T) {
	store := NewStore()
	store.InsertOrReplace(NewItem("Banana", P(0.5), 20, 10))
	store.InsertOrReplace(NewItem("apple", P(1.25), 2, 5))
	store.InsertOrReplace(NewItem("Cherry", P(12), 0, 3))

	var b strings.Builder
	if err := EncodeStore(&b, store); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeStore(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Len() != store.Len() {
		t.Fatalf("round trip changed length: %d != %d", decoded.Len(), store.Len())
	}
	original := store.Items()
	for i, got := range decoded.Items() {
		want := original[i]
		if got.Name() != want.Name() ||
			!got.Price().Equal(want.Price()) ||
			got.Stock() != want.Stock() ||
			got.ReorderLevel() != want.ReorderLevel() {
			t.Errorf("item %d: got %s %s %d %d, want %s %s %d %d", i,
				got.Name(), got.Price(), got.Stock(), got.ReorderLevel(),
				want.Name(), want.Price(), want.Stock(), want.ReorderLevel())
		}
	}
}
