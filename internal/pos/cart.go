package pos

import (
	"errors"
	"time"

	"pharma-pos/internal/models"
)

// Errors surfaced to the cashier. Handlers map these to HTTP statuses; none of
// them is retried automatically.
var (
	ErrExpiredProduct       = errors.New("product is expired and cannot be sold")
	ErrStockInsufficient    = errors.New("insufficient stock")
	ErrPrescriptionRequired = errors.New("prescription confirmation required")
	ErrLineNotFound         = errors.New("item is not in the cart")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPayment       = errors.New("invalid payment method")
)

// CartLine is one product in the in-progress sale: a snapshot of the product as
// it was when added, plus the quantity being sold.
type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart accumulates line items for the one in-progress sale. Quantities are capped
// against the catalog stock passed in at mutation time; they are not re-validated
// until checkout, so a line can go stale if the catalog changes underneath it.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of p in the cart. p must be the current catalog row: the
// stock cap is checked against p.Stock as of this call.
//
// Expired products are a hard block. Prescription products must have been
// confirmed first (see ConfirmationRegistry); without confirmation the cart is
// left unchanged. The product's warning note, if any, comes back as a
// non-blocking notice.
func (c *Cart) Add(p models.Product, confirmed bool, now time.Time) (warning string, err error) {
	if p.Expired(now) {
		return "", ErrExpiredProduct
	}
	if p.RequiresPrescription && !confirmed {
		return "", ErrPrescriptionRequired
	}

	idx := c.find(p.ID)
	qty := 1
	if idx >= 0 {
		qty = c.lines[idx].Quantity + 1
	}
	if qty > p.Stock {
		return "", ErrStockInsufficient
	}

	if idx >= 0 {
		c.lines[idx].Quantity = qty
	} else {
		c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
	}
	return p.WarningNote, nil
}

// AdjustQuantity moves a line by delta. Increments past currentStock are
// rejected; decrements clamp at zero, and a line reaching zero is removed.
func (c *Cart) AdjustQuantity(productID uint, delta int, currentStock int) error {
	idx := c.find(productID)
	if idx < 0 {
		return ErrLineNotFound
	}
	qty := c.lines[idx].Quantity + delta
	if qty > currentStock {
		return ErrStockInsufficient
	}
	if qty <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		return nil
	}
	c.lines[idx].Quantity = qty
	return nil
}

// Remove drops the line unconditionally. Removing an absent line is a no-op.
func (c *Cart) Remove(productID uint) {
	idx := c.find(productID)
	if idx >= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	}
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Restore replaces the cart's contents with a held snapshot.
func (c *Cart) Restore(lines []CartLine) {
	c.lines = make([]CartLine, len(lines))
	copy(c.lines, lines)
}

// Subtotal is the sum of price x quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Product.Price * float64(line.Quantity)
	}
	return sum
}

// Tax applies taxRate (a percentage, e.g. 17 for 17%) to the subtotal.
func (c *Cart) Tax(taxRate float64) float64 {
	return c.Subtotal() * taxRate / 100
}

// Total is subtotal plus tax.
func (c *Cart) Total(taxRate float64) float64 {
	return c.Subtotal() + c.Tax(taxRate)
}

func (c *Cart) find(productID uint) int {
	for i, line := range c.lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}
