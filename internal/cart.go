package internal

import (
	"encoding/json"
	"fmt"
)

// CartLineItem is one row of the cart: a product id and the quantity
// requested, with name/price/image snapshotted at add time. The
// snapshot is deliberate: the cart shows what the customer saw, even
// if the catalog changes afterwards.
type CartLineItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Quantity int     `json:"quantity"`
}

// CartStore holds the shopping cart and keeps it durable in the local
// store under KeyCart. Product id is unique within the cart; adding a
// product already present bumps its quantity. Insertion order is the
// display order.
//
// Every mutation rewrites the full serialized cart. A persistence
// failure is logged and the in-memory state keeps going; the next
// successful mutation writes the complete current state anyway.
type CartStore struct {
	store *LocalStore
	items []CartLineItem
}

// NewCartStore creates a cart store bound to the given local store.
// Call Hydrate before use.
func NewCartStore(store *LocalStore) *CartStore {
	return &CartStore{store: store}
}

// Hydrate loads the persisted cart. An absent or unparseable value
// yields an empty cart; corruption is never surfaced to the caller.
func (c *CartStore) Hydrate() {
	c.items = nil

	raw, ok, err := c.store.Get(KeyCart)
	if err != nil {
		LogDebug("cart hydrate: %v", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	var items []CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		LogDebug("cart hydrate: discarding unreadable cart: %v", err)
		return
	}
	c.items = items
}

// AddToCart merges product into the cart: +1 quantity if the id is
// already present, otherwise a new line appended with quantity 1.
// Products with a non-positive id or a negative price are rejected
// rather than written as corrupt line items.
func (c *CartStore) AddToCart(p Product) error {
	if p.ID <= 0 {
		return fmt.Errorf("cannot add product with id %d to cart", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("cannot add product %d with negative price %.0f", p.ID, p.Price)
	}

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			c.persist()
			return nil
		}
	}

	c.items = append(c.items, CartLineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Quantity: 1,
	})
	c.persist()
	return nil
}

// RemoveFromCart drops the line with the given product id. Removing an
// absent id is a no-op.
func (c *CartStore) RemoveFromCart(id int) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persist()
}

// ClearCart empties the cart unconditionally.
func (c *CartStore) ClearCart() {
	c.items = nil
	c.persist()
}

// Count is the total number of units across all lines.
func (c *CartStore) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total is the cart value: sum of price times quantity per line.
func (c *CartStore) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Items returns a copy of the cart lines in insertion order.
func (c *CartStore) Items() []CartLineItem {
	items := make([]CartLineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CartStore) persist() {
	items := c.items
	if items == nil {
		items = []CartLineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		LogWarn("cart persist: %v", err)
		return
	}
	if err := c.store.Set(KeyCart, string(data)); err != nil {
		// A failed write means the cart on disk is now stale.
		LogError("cart persist: %v", err)
	}
}
