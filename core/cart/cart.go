package cart

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/lumacafe/cafekit/core/store"
)

// Key is the storage key owned by this package.
const Key = "mi_carrito"

// ErrNilStore is returned when a Cart is created without a backing store.
var ErrNilStore = errors.New("cart: nil store")

// Item is one cart line.
type Item struct {
	ProductID int64 `json:"id_producto"`
	Quantity  int   `json:"cantidad"`
}

// Cart is the in-memory cart, mirrored to the store on every mutation. Safe
// for concurrent use. Entries keep insertion order and product ids are unique
// within the list.
type Cart struct {
	mu    sync.RWMutex
	store store.Store
	items []Item
}

// New creates an empty cart backed by st. Call Load to restore persisted
// entries.
func New(st store.Store) (*Cart, error) {
	if st == nil {
		return nil, ErrNilStore
	}
	return &Cart{store: st}, nil
}

// Load replaces the in-memory list with the persisted one. A malformed
// persisted payload resets the cart to empty.
func (c *Cart) Load(ctx context.Context) error {
	items, err := store.GetJSON[[]Item](ctx, c.store, Key)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	return nil
}

// Items returns a copy of the cart entries in insertion order.
func (c *Cart) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Add puts quantity units of the product into the cart. If the product is
// already present the quantity accumulates onto the existing entry.
func (c *Cart) Add(ctx context.Context, productID int64, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(productID); i >= 0 {
		c.items[i].Quantity += quantity
	} else {
		c.items = append(c.items, Item{ProductID: productID, Quantity: quantity})
	}
	return c.persist(ctx)
}

// Remove deletes the product's entry. Removing an absent product is a no-op
// that still rewrites the persisted list.
func (c *Cart) Remove(ctx context.Context, productID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = slices.DeleteFunc(c.items, func(it Item) bool {
		return it.ProductID == productID
	})
	return c.persist(ctx)
}

// SetQuantity writes the absolute quantity for the product. Values of zero
// or below are written as-is; callers that want removal must call Remove.
// Setting a quantity for an absent product is a no-op.
func (c *Cart) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(productID); i >= 0 {
		c.items[i].Quantity = quantity
	}
	return c.persist(ctx)
}

// Quantity returns the product's quantity, or 0 when absent.
func (c *Cart) Quantity(productID int64) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.index(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// index returns the position of productID, or -1. Caller must hold c.mu.
func (c *Cart) index(productID int64) int {
	return slices.IndexFunc(c.items, func(it Item) bool {
		return it.ProductID == productID
	})
}

// persist rewrites the whole list. Caller must hold c.mu.
func (c *Cart) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []Item{}
	}
	return store.SetJSON(ctx, c.store, Key, items)
}
