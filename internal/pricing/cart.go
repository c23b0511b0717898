package pricing

import "github.com/shopspring/decimal"

// Cart is an immutable collection of lines, one per distinct item. Every
// transition returns a new Cart and leaves the receiver untouched, so a cart
// value can be handed around without sharing edits.
type Cart struct {
	lines []Line
}

func NewCart(lines ...Line) Cart {
	cart := Cart{}
	for _, line := range lines {
		cart = cart.Add(line.ItemID, line.Price, line.Quantity)
	}
	return cart
}

// Add puts quantity units of an item in the cart. An item already present
// keeps its first price and has its quantity increased.
func (c Cart) Add(itemID int64, price decimal.Decimal, quantity int) Cart {
	if quantity <= 0 {
		return c
	}
	next := c.clone()
	for i := range next.lines {
		if next.lines[i].ItemID == itemID {
			next.lines[i].Quantity += quantity
			return next
		}
	}
	next.lines = append(next.lines, Line{ItemID: itemID, Price: price, Quantity: quantity})
	return next
}

// Update sets the quantity of an item; zero or less removes it.
func (c Cart) Update(itemID int64, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(itemID)
	}
	next := c.clone()
	for i := range next.lines {
		if next.lines[i].ItemID == itemID {
			next.lines[i].Quantity = quantity
		}
	}
	return next
}

func (c Cart) Remove(itemID int64) Cart {
	next := Cart{lines: make([]Line, 0, len(c.lines))}
	for _, line := range c.lines {
		if line.ItemID != itemID {
			next.lines = append(next.lines, line)
		}
	}
	return next
}

// Lines returns a copy in first-added order.
func (c Cart) Lines() []Line {
	return c.clone().lines
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c Cart) Totals() Totals {
	return Compute(c.lines)
}

func (c Cart) clone() Cart {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return Cart{lines: lines}
}
