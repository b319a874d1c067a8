package storefront

import (
	"errors"
	"sync"

	"menuqr-dashboard/dashboard-svc/internal/domain"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrItemUnavailable = errors.New("item is not available")
)

// CartLine is one pending item before the order is placed.
type CartLine struct {
	ItemID       string
	Name         string
	Price        int64
	Quantity     int
	ImageURL     string
	Instructions string
}

func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart lives only in the visitor's process. It is never sent anywhere until
// it becomes the line items of an order.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of item in the cart, merging with an existing line.
// A quantity below one adds a single unit.
func (c *Cart) Add(item domain.Item, quantity int) error {
	if !item.Orderable() {
		return ErrItemUnavailable
	}
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
		ImageURL: item.ImageURL,
	})
	return nil
}

// SetQuantity changes a line. Zero or less removes it.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) SetInstructions(itemID, instructions string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Instructions = instructions
			return
		}
	}
}

func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}

func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CartLine(nil), c.lines...)
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Count is the number of units, not lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// OrderLines converts the cart into the line items of an order request.
func (c *Cart) OrderLines() []domain.OrderLineRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.OrderLineRequest, len(c.lines))
	for i, line := range c.lines {
		out[i] = domain.OrderLineRequest{
			ItemID:       line.ItemID,
			Quantity:     line.Quantity,
			Instructions: line.Instructions,
		}
	}
	return out
}
