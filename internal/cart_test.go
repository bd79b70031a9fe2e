package internal

import (
	"encoding/json"
	"testing"

	"github.com/akwaba-bebe/akwaba-cli/testutil"
)

func testProduct(id int, name string, price float64) Product {
	return Product{ID: id, Name: name, Price: price, ImageURL: "https://img.example/p.jpg"}
}

func newTestCart(t *testing.T) (*CartStore, *LocalStore) {
	t.Helper()
	store := NewLocalStore(testutil.CreateInMemoryDB(t))
	cart := NewCartStore(store)
	cart.Hydrate()
	return cart, store
}

func TestCartStore_AddDistinctProducts(t *testing.T) {
	cart, _ := newTestCart(t)

	products := []Product{
		testProduct(1, "Biberon", 5000),
		testProduct(2, "Couches", 3000),
		testProduct(3, "Poussette", 85000),
	}
	for _, p := range products {
		if err := cart.AddToCart(p); err != nil {
			t.Fatalf("AddToCart(%d) error = %v", p.ID, err)
		}
	}

	items := cart.Items()
	if len(items) != 3 {
		t.Fatalf("Items() len = %d, want 3", len(items))
	}
	for i, p := range products {
		if items[i].ID != p.ID {
			t.Errorf("Items()[%d].ID = %d, want %d (insertion order)", i, items[i].ID, p.ID)
		}
		if items[i].Quantity != 1 {
			t.Errorf("Items()[%d].Quantity = %d, want 1", i, items[i].Quantity)
		}
	}
}

func TestCartStore_AddSameProductMerges(t *testing.T) {
	cart, _ := newTestCart(t)

	p := testProduct(7, "Body coton", 2500)
	if err := cart.AddToCart(p); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if err := cart.AddToCart(p); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("Items() len = %d, want 1", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", items[0].Quantity)
	}
	if got, want := cart.Total(), 5000.0; got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}
}

func TestCartStore_MergeKeepsSnapshotAndPosition(t *testing.T) {
	cart, _ := newTestCart(t)

	_ = cart.AddToCart(testProduct(1, "Biberon", 5000))
	_ = cart.AddToCart(testProduct(2, "Couches", 3000))
	// Re-adding product 1 with a changed catalog price must neither
	// move the line nor re-snapshot it.
	_ = cart.AddToCart(testProduct(1, "Biberon Deluxe", 9999))

	items := cart.Items()
	if items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("order changed: got ids %d, %d", items[0].ID, items[1].ID)
	}
	if items[0].Name != "Biberon" || items[0].Price != 5000 {
		t.Errorf("snapshot changed: got %q/%v, want Biberon/5000", items[0].Name, items[0].Price)
	}
	if items[0].Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", items[0].Quantity)
	}
}

func TestCartStore_RemoveAbsentIsNoop(t *testing.T) {
	cart, _ := newTestCart(t)

	_ = cart.AddToCart(testProduct(1, "Biberon", 5000))
	cart.RemoveFromCart(99)

	if len(cart.Items()) != 1 {
		t.Errorf("Items() len = %d after removing absent id, want 1", len(cart.Items()))
	}
}

func TestCartStore_Remove(t *testing.T) {
	cart, _ := newTestCart(t)

	_ = cart.AddToCart(testProduct(1, "Biberon", 5000))
	_ = cart.AddToCart(testProduct(2, "Couches", 3000))
	cart.RemoveFromCart(1)

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("Items() len = %d, want 1", len(items))
	}
	if items[0].ID != 2 {
		t.Errorf("remaining id = %d, want 2", items[0].ID)
	}
}

func TestCartStore_Clear(t *testing.T) {
	cart, _ := newTestCart(t)

	_ = cart.AddToCart(testProduct(1, "Biberon", 5000))
	_ = cart.AddToCart(testProduct(2, "Couches", 3000))
	cart.ClearCart()

	if len(cart.Items()) != 0 {
		t.Errorf("Items() len = %d after ClearCart(), want 0", len(cart.Items()))
	}
	if cart.Count() != 0 {
		t.Errorf("Count() = %d after ClearCart(), want 0", cart.Count())
	}
	if cart.Total() != 0 {
		t.Errorf("Total() = %v after ClearCart(), want 0", cart.Total())
	}
}

func TestCartStore_CountAndTotal(t *testing.T) {
	cart, _ := newTestCart(t)

	// [{id:1, price:5000, qty:2}, {id:2, price:3000, qty:1}]
	_ = cart.AddToCart(testProduct(1, "Biberon", 5000))
	_ = cart.AddToCart(testProduct(1, "Biberon", 5000))
	_ = cart.AddToCart(testProduct(2, "Couches", 3000))

	if got := cart.Total(); got != 13000 {
		t.Errorf("Total() = %v, want 13000", got)
	}
	if got := cart.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestCartStore_PersistsEveryMutation(t *testing.T) {
	store := NewLocalStore(testutil.CreateInMemoryDB(t))
	cart := NewCartStore(store)
	cart.Hydrate()

	readPersisted := func() []CartLineItem {
		t.Helper()
		raw, ok, err := store.Get(KeyCart)
		if err != nil || !ok {
			t.Fatalf("persisted cart missing: ok=%v err=%v", ok, err)
		}
		var items []CartLineItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			t.Fatalf("persisted cart unparseable: %v", err)
		}
		return items
	}

	_ = cart.AddToCart(testProduct(1, "Biberon", 5000))
	if items := readPersisted(); len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("after add: persisted = %+v", items)
	}

	cart.RemoveFromCart(1)
	if items := readPersisted(); len(items) != 0 {
		t.Errorf("after remove: persisted = %+v, want empty", items)
	}

	_ = cart.AddToCart(testProduct(2, "Couches", 3000))
	cart.ClearCart()
	if items := readPersisted(); len(items) != 0 {
		t.Errorf("after clear: persisted = %+v, want empty", items)
	}
}

func TestCartStore_HydrateRoundTrip(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	store := NewLocalStore(db)

	first := NewCartStore(store)
	first.Hydrate()
	_ = first.AddToCart(testProduct(1, "Biberon", 5000))
	_ = first.AddToCart(testProduct(2, "Couches", 3000))
	_ = first.AddToCart(testProduct(1, "Biberon", 5000))

	// A second store over the same database sees the same cart.
	second := NewCartStore(store)
	second.Hydrate()

	items := second.Items()
	if len(items) != 2 {
		t.Fatalf("Items() len = %d, want 2", len(items))
	}
	if items[0].ID != 1 || items[0].Quantity != 2 {
		t.Errorf("first line = %+v, want id 1 qty 2", items[0])
	}
	if items[1].ID != 2 || items[1].Quantity != 1 {
		t.Errorf("second line = %+v, want id 2 qty 1", items[1])
	}
	if second.Total() != 13000 {
		t.Errorf("Total() = %v, want 13000", second.Total())
	}
}

func TestCartStore_HydrateCorruptYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated json", `[{"id": 1, "name":`},
		{"wrong shape", `{"id": 1}`},
		{"not json at all", "☂️"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.CreateInMemoryDB(t)
			testutil.SeedKey(t, db, "cart", tt.raw)

			cart := NewCartStore(NewLocalStore(db))
			cart.Hydrate()

			if len(cart.Items()) != 0 {
				t.Errorf("Items() len = %d, want 0", len(cart.Items()))
			}
			if cart.Count() != 0 || cart.Total() != 0 {
				t.Errorf("Count() = %d, Total() = %v; want zeros", cart.Count(), cart.Total())
			}
		})
	}
}

func TestCartStore_HydrateAbsentYieldsEmpty(t *testing.T) {
	cart, _ := newTestCart(t)

	if len(cart.Items()) != 0 {
		t.Errorf("Items() len = %d for fresh store, want 0", len(cart.Items()))
	}
}

func TestCartStore_AddRejectsBadProducts(t *testing.T) {
	cart, _ := newTestCart(t)

	if err := cart.AddToCart(Product{ID: 0, Name: "ghost", Price: 100}); err == nil {
		t.Error("AddToCart() with id 0 error = nil, want error")
	}
	if err := cart.AddToCart(Product{ID: -3, Name: "ghost", Price: 100}); err == nil {
		t.Error("AddToCart() with negative id error = nil, want error")
	}
	if err := cart.AddToCart(Product{ID: 5, Name: "weird", Price: -1}); err == nil {
		t.Error("AddToCart() with negative price error = nil, want error")
	}

	if len(cart.Items()) != 0 {
		t.Errorf("Items() len = %d after rejected adds, want 0", len(cart.Items()))
	}
}

func TestCartStore_ItemsReturnsCopy(t *testing.T) {
	cart, _ := newTestCart(t)
	_ = cart.AddToCart(testProduct(1, "Biberon", 5000))

	items := cart.Items()
	items[0].Quantity = 99

	if cart.Items()[0].Quantity != 1 {
		t.Error("mutating the Items() slice changed the cart")
	}
}
