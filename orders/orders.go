// Package orders holds the transient session carts and the append-only
// order ledger. Cart items are value-copy snapshots of catalog items, so a
// later catalog edit never retroactively changes a cart or a placed order.
package orders

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"meal-planner-api/models"
	"meal-planner-api/store"
)

// ErrEmptyCart rejects order placement on an empty cart. Surfaced to the
// user, unlike the silent no-ops elsewhere.
var ErrEmptyCart = errors.New("cart is empty")

// Cart is one customer's transient, in-memory cart for the active session.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// Add appends a snapshot of the meal to the cart.
func (c *Cart) Add(meal models.MealItem) models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	item := models.CartItem{
		MealID:   meal.ID,
		Name:     meal.Name,
		Calories: meal.Calories,
		Price:    meal.Price,
	}
	c.items = append(c.items, item)
	return item
}

// Remove drops the item at the given position; out-of-range positions are a
// silent no-op.
func (c *Cart) Remove(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartItem(nil), c.items...)
}

// Total sums the snapshot prices of all cart items.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

func (c *Cart) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

var (
	cartsMu sync.Mutex
	carts   = map[string]*Cart{}
)

// CartFor returns the session cart for the given user, creating it on first
// access.
func CartFor(userID string) *Cart {
	cartsMu.Lock()
	defer cartsMu.Unlock()
	cart, ok := carts[userID]
	if !ok {
		cart = &Cart{}
		carts[userID] = cart
	}
	return cart
}

// ledgerMu serializes appends to the orders table.
var ledgerMu sync.Mutex

var lastOrderMillis int64

// nextOrderID builds "ORD-<millis>" ids, bumping past the previous id when
// two orders land in the same millisecond. Caller holds ledgerMu.
func nextOrderID() string {
	millis := time.Now().UnixMilli()
	if millis <= lastOrderMillis {
		millis = lastOrderMillis + 1
	}
	lastOrderMillis = millis
	return fmt.Sprintf("ORD-%d", millis)
}

// Place builds an order snapshot from the cart, appends it to the ledger,
// and clears the cart. Returns ErrEmptyCart when the cart is empty, leaving
// the ledger unchanged.
func Place(userID string, cart *Cart) (models.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var total float64
	for _, item := range items {
		total += item.Price
	}

	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	order := models.Order{
		ID:         nextOrderID(),
		CustomerID: userID,
		Items:      items,
		Total:      total,
		Date:       time.Now().UTC(),
	}
	ledger, err := List()
	if err != nil {
		return models.Order{}, err
	}
	ledger = append(ledger, order)
	if err := store.Write(store.TableOrders, ledger); err != nil {
		return models.Order{}, err
	}
	cart.clear()
	return order, nil
}

// List returns every placed order, oldest first.
func List() ([]models.Order, error) {
	var ledger []models.Order
	if err := store.Read(store.TableOrders, &ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// Recent returns the last n orders, most recent first.
func Recent(n int) ([]models.Order, error) {
	ledger, err := List()
	if err != nil {
		return nil, err
	}
	if n > len(ledger) {
		n = len(ledger)
	}
	out := make([]models.Order, 0, n)
	for i := len(ledger) - 1; i >= len(ledger)-n; i-- {
		out = append(out, ledger[i])
	}
	return out, nil
}

// ForCustomer returns the given customer's orders, most recent first.
func ForCustomer(userID string) ([]models.Order, error) {
	ledger, err := List()
	if err != nil {
		return nil, err
	}
	var out []models.Order
	for i := len(ledger) - 1; i >= 0; i-- {
		if ledger[i].CustomerID == userID {
			out = append(out, ledger[i])
		}
	}
	return out, nil
}
