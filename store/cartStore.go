package store

import (
	"errors"
	"sync"

	"github.com/bprathamesh20/food-delivery/models"
)

// ErrDifferentRestaurant means the cart already holds another restaurant's
// items and the caller has not confirmed clearing them.
var ErrDifferentRestaurant = errors.New("cart holds items from a different restaurant")

// CartStore is the in-progress order: at most one restaurant's items at a
// time, persisted after every mutation.
type CartStore struct {
	store *Store

	mu         sync.Mutex
	lines      []models.CartLine
	restaurant *models.CartRestaurant
}

func NewCartStore(s *Store) *CartStore {
	return &CartStore{store: s}
}

// Init restores the cart from the durable store; missing or corrupt records
// start it empty.
func (c *CartStore) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var lines []models.CartLine
	if c.store.GetJSON(keyCart, &lines) {
		c.lines = lines
	}
	var restaurant models.CartRestaurant
	if c.store.GetJSON(keyCartRestaurant, &restaurant) {
		c.restaurant = &restaurant
	}
}

// Add puts one unit of item in the cart, incrementing the quantity when the
// item is already there. Adding from a different restaurant than the cart is
// bound to requires override; without it the cart is left untouched and
// ErrDifferentRestaurant is returned so the caller can ask the user.
func (c *CartStore) Add(item models.MenuItem, restaurant models.CartRestaurant, override bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.restaurant != nil && c.restaurant.ID != restaurant.ID {
		if !override {
			return ErrDifferentRestaurant
		}
		c.lines = nil
		c.restaurant = nil
		c.store.Delete(keyCart, keyCartRestaurant)
	}

	r := restaurant
	c.restaurant = &r

	found := false
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, models.CartLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
	}

	c.persist()
	return nil
}

func (c *CartStore) Remove(itemID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(itemID)
}

func (c *CartStore) removeLocked(itemID int64) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
	if len(c.lines) == 0 {
		c.restaurant = nil
		c.store.Delete(keyCartRestaurant)
	}
	c.persist()
}

// SetQuantity overwrites a line's quantity; anything below one removes the
// line entirely.
func (c *CartStore) SetQuantity(itemID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity < 1 {
		c.removeLocked(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			break
		}
	}
	c.persist()
}

func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.restaurant = nil
	c.store.Delete(keyCart, keyCartRestaurant)
}

func (c *CartStore) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

func (c *CartStore) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *CartStore) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CartStore) Restaurant() *models.CartRestaurant {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restaurant == nil {
		return nil
	}
	r := *c.restaurant
	return &r
}

func (c *CartStore) persist() {
	c.store.PutJSON(keyCart, c.lines)
	if c.restaurant != nil {
		c.store.PutJSON(keyCartRestaurant, c.restaurant)
	}
}
