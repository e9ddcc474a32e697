package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzahub/pizzahub-api/models"
	"github.com/pizzahub/pizzahub-api/pricing"
	"github.com/pizzahub/pizzahub-api/storage"
)

// Cart is the ordered collection of line items for the current session.
// Every mutation rewrites the persisted cart record; a failed persist is
// logged and the in-memory state stays authoritative.
type Cart struct {
	mu      sync.Mutex
	records storage.Records
	logger  *zap.Logger
	items   []models.CartItem
}

func NewCart(records storage.Records, logger *zap.Logger) *Cart {
	c := &Cart{records: records, logger: logger}

	var items []models.CartItem
	err := records.Load(context.Background(), storage.KeyCart, &items)
	switch {
	case err == nil:
		c.items = items
	case errors.Is(err, storage.ErrNotFound):
		// first run, empty cart
	default:
		logger.Warn("failed to load cart record, starting empty", zap.Error(err))
	}
	return c
}

// AddItem prices and appends a new line item. Quantity must be >= 1.
func (c *Cart) AddItem(pizza models.Pizza, size models.PizzaSize, crust models.CrustType, toppings []models.ToppingSelection, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, models.NewValidationError("quantity must be at least 1")
	}

	unit, total := pricing.Quote(pizza, size, crust, toppings, quantity)
	item := models.CartItem{
		ID:         uuid.NewString(),
		PizzaID:    pizza.ID,
		Name:       pizza.Name,
		Size:       size,
		Crust:      crust,
		Toppings:   toppings,
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: total,
		AddedAt:    time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.persistLocked()
	return item.Clone(), nil
}

// RemoveItem deletes the item with the given id and reports whether it
// was present. Removing an absent item is not an error.
func (c *Cart) RemoveItem(itemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persistLocked()
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persistLocked()
}

// Items returns a deep copy of the cart contents in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	for i, item := range c.items {
		out[i] = item.Clone()
	}
	return out
}

// TotalItemCount sums quantities across items (the cart badge number).
func (c *Cart) TotalItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Summary returns the money breakdown for the current contents.
func (c *Cart) Summary() pricing.Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.Summarize(c.items)
}

// Restore replaces the cart contents with deep copies of previously
// ordered items under fresh ids. Serves reorder.
func (c *Cart) Restore(items []models.CartItem) []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	replaced := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		copied := item.Clone()
		copied.ID = uuid.NewString()
		copied.AddedAt = time.Now()
		replaced = append(replaced, copied)
	}
	c.items = replaced

	restored := make([]models.CartItem, len(replaced))
	for i, item := range replaced {
		restored[i] = item.Clone()
	}
	c.persistLocked()
	return restored
}

func (c *Cart) persistLocked() {
	if err := c.records.Save(context.Background(), storage.KeyCart, c.items); err != nil {
		c.logger.Warn("failed to persist cart", zap.Error(err))
	}
}
