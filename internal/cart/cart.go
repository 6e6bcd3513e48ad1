// Package cart holds the ephemeral customer cart and turns it into a
// WhatsApp checkout message. Nothing here is persisted.
package cart

import (
	"github.com/masagus/menuku/internal/model"
)

// Line is one cart entry. Item is a snapshot captured when the line was
// added; later catalog price changes do not retroactively reprice the line.
type Line struct {
	Item     model.MenuItem `json:"item"`
	Quantity int            `json:"quantity"`
}

// Cart maps item ids to lines, remembering insertion order so the checkout
// message is deterministic.
type Cart struct {
	lines map[string]*Line
	order []string
}

func New() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// Add puts one portion of the item in the cart, incrementing the quantity if
// a line for it already exists.
func (c *Cart) Add(item model.MenuItem) {
	c.AddN(item, 1)
}

// AddN adds n portions of the item. n < 1 is ignored.
func (c *Cart) AddN(item model.MenuItem, n int) {
	if n < 1 {
		return
	}
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity += n
		return
	}
	c.lines[item.ID] = &Line{Item: item, Quantity: n}
	c.order = append(c.order, item.ID)
}

// UpdateQuantity adjusts a line's quantity by delta, flooring at zero. A
// line that reaches zero is removed entirely. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id string, delta int) {
	line, ok := c.lines[id]
	if !ok {
		return
	}
	q := line.Quantity + delta
	if q < 0 {
		q = 0
	}
	if q == 0 {
		c.remove(id)
		return
	}
	line.Quantity = q
}

func (c *Cart) remove(id string) {
	delete(c.lines, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Total returns the sum of price times quantity over all lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Item.Price * int64(line.Quantity)
	}
	return total
}

// PortionCount returns the summed quantity across all lines.
func (c *Cart) PortionCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[string]*Line)
	c.order = nil
}
