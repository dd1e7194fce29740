package inventory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testCatalogJSON = `{
	"catalog": {
		"products": [
			{"sku": "Widget", "unit_price": 9.99, "reorder": 10},
			{"sku": "Gadget", "unit_price": "4,50", "reorder": 5, "on_hand": 3}
		]
	}
}`

func testCatalog() Catalog {
	return Catalog{
		Items:   "$.catalog.products",
		Name:    "$.sku",
		Price:   "$.unit_price",
		Reorder: "$.reorder",
	}
}

func TestExtractCatalog(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(testCatalogJSON), &jobj); err != nil {
		t.Fatal(err)
	}

	items, err := extractCatalog(jobj, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	widget := items[0]
	if widget.Name() != "Widget" || !widget.Price().Equal(P(9.99)) || widget.ReorderLevel() != 10 {
		t.Errorf("widget = %s %s %d", widget.Name(), widget.Price(), widget.ReorderLevel())
	}
	// no stock path: defaults to twice the reorder level
	if widget.Stock() != 20 {
		t.Errorf("widget stock = %d, want 20", widget.Stock())
	}

	// the comma price of the second entry is normalized
	gadget := items[1]
	if !gadget.Price().Equal(P(4.5)) {
		t.Errorf("gadget price = %s, want 4.50", gadget.Price())
	}
}

func TestExtractCatalog_StockPath(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(testCatalogJSON), &jobj); err != nil {
		t.Fatal(err)
	}
	c := testCatalog()
	c.Items = "$.catalog.products[1:]" // only the entry carrying on_hand
	c.Stock = "$.on_hand"

	items, err := extractCatalog(jobj, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Stock() != 3 {
		t.Errorf("stock = %d, want 3 from the on_hand field", items[0].Stock())
	}
}

func TestExtractCatalog_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		jsonDoc string
		mutate  func(*Catalog)
	}{
		{
			name:    "entries path is not a list",
			jsonDoc: `{"catalog": {"products": {"sku": "Widget"}}}`,
		},
		{
			name:    "missing name",
			jsonDoc: `{"catalog": {"products": [{"unit_price": 1.0, "reorder": 1}]}}`,
		},
		{
			name:    "unusable price",
			jsonDoc: `{"catalog": {"products": [{"sku": "Widget", "unit_price": true, "reorder": 1}]}}`,
		},
		{
			name:    "zero reorder level rejected by item construction",
			jsonDoc: `{"catalog": {"products": [{"sku": "Widget", "unit_price": 1.0, "reorder": 0}]}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var jobj any
			if err := json.Unmarshal([]byte(tc.jsonDoc), &jobj); err != nil {
				t.Fatal(err)
			}
			c := testCatalog()
			if tc.mutate != nil {
				tc.mutate(&c)
			}
			if _, err := extractCatalog(jobj, c); err == nil {
				t.Error("expected an error, got none")
			}
		})
	}
}

func TestFetchCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testCatalogJSON))
	}))
	defer server.Close()

	items, err := FetchCatalog(server.Client(), server.URL, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	// Imported items merge through the normal chokepoint: the store stays sorted.
	store := NewStore()
	store.InsertOrReplace(NewItem("Abacus", P(3), 1, 1))
	for _, it := range items {
		store.InsertOrReplace(it)
	}
	got := store.Items()
	want := []string{"Abacus", "Gadget", "Widget"}
	for i, name := range want {
		if got[i].Name() != name {
			t.Errorf("items[%d] = %q, want %q", i, got[i].Name(), name)
		}
	}
}

func TestFetchCatalog_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := FetchCatalog(server.Client(), server.URL, testCatalog())
	if err == nil || !strings.Contains(err.Error(), "cannot http GET") {
		t.Errorf("expected an http error, got %v", err)
	}
}
