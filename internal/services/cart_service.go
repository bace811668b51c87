package services

import (
	"fmt"
	"marketplace-service/internal/models"
	"math"
)

// CartService keeps one line per product id in insertion order. It is not
// safe for concurrent use; App serialises access to it.
type CartService struct {
	lines []models.CartLine
}

func NewCartService() *CartService {
	return &CartService{}
}

// AddItem increments the product's line or inserts it with quantity 1.
func (c *CartService) AddItem(product models.Product) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, models.CartLine{Product: product, Quantity: 1})
}

// UpdateQuantity overwrites the line's quantity. A quantity <= 0 removes the
// line. Unknown product ids are ignored.
func (c *CartService) UpdateQuantity(productID, quantity int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = quantity
}

func (c *CartService) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Subtotal is rounded to two decimals.
func (c *CartService) Subtotal() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.LineTotal()
	}
	return math.Round(total*100) / 100
}

func (c *CartService) SubtotalText() string {
	return fmt.Sprintf("%.2f", c.Subtotal())
}

func (c *CartService) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CartService) Summary() models.CartSummary {
	return models.CartSummary{
		Lines:        c.Lines(),
		ItemCount:    c.ItemCount(),
		Subtotal:     c.Subtotal(),
		SubtotalText: c.SubtotalText(),
	}
}

func (c *CartService) indexOf(productID int) int {
	for i, l := range c.lines {
		if l.ID == productID {
			return i
		}
	}
	return -1
}
