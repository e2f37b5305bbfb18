package pos

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrHeldSaleNotFound is returned when the held-sale id does not exist, including
// a second resume of an id that was already resumed.
var ErrHeldSaleNotFound = errors.New("held sale not found")

// HeldSale is a suspended cart, restorable by id. Lines are full snapshots taken
// at hold time, not references into the catalog.
type HeldSale struct {
	ID       string     `json:"id"`
	HeldAt   time.Time  `json:"held_at"`
	Lines    []CartLine `json:"lines"`
	Total    float64    `json:"total"`
	UserID   uint       `json:"user_id"`
	UserName string     `json:"user_name"`
	Note     string     `json:"note"`
}

// HoldRegistry parks in-progress carts. Entries live in memory and survive only
// as long as the process, like the rest of the session state. They are removed
// on resume and never garbage-collected otherwise.
type HoldRegistry struct {
	entries []HeldSale // insertion order, for listing
}

func NewHoldRegistry() *HoldRegistry {
	return &HoldRegistry{}
}

// Hold snapshots the cart into the registry and clears the active cart. Empty
// carts are rejected. An empty note defaults to the hold time.
func (r *HoldRegistry) Hold(c *Cart, total float64, userID uint, userName, note string, now time.Time) (HeldSale, error) {
	if c.Empty() {
		return HeldSale{}, ErrEmptyCart
	}
	if note == "" {
		note = now.Format("02 Jan 2006 15:04")
	}
	held := HeldSale{
		ID:       uuid.NewString(),
		HeldAt:   now,
		Lines:    c.Lines(),
		Total:    total,
		UserID:   userID,
		UserName: userName,
		Note:     note,
	}
	r.entries = append(r.entries, held)
	c.Clear()
	return held, nil
}

// Resume moves the held sale back into the active cart, replacing whatever the
// cart held, and removes the entry. Resuming the same id twice fails the second
// time. The restored lines are not re-validated against current stock; checkout
// remains the gate.
func (r *HoldRegistry) Resume(id string, c *Cart) (HeldSale, error) {
	for i, held := range r.entries {
		if held.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			c.Restore(held.Lines)
			return held, nil
		}
	}
	return HeldSale{}, ErrHeldSaleNotFound
}

// List returns the held sales in the order they were parked.
func (r *HoldRegistry) List() []HeldSale {
	out := make([]HeldSale, len(r.entries))
	copy(out, r.entries)
	return out
}
