package pos

import "github.com/google/uuid"

// Confirmation is a pending yes/no decision handed back to the terminal. The
// cashier redeems the token to proceed; declining simply never redeems it.
type Confirmation struct {
	Token     string `json:"token"`
	ProductID uint   `json:"product_id"`
	Reason    string `json:"reason"`
}

// ConfirmationRegistry implements the two-phase gate for prescription items:
// Request mints a token tied to a product, Redeem consumes it exactly once.
type ConfirmationRegistry struct {
	pending map[string]Confirmation
}

func NewConfirmationRegistry() *ConfirmationRegistry {
	return &ConfirmationRegistry{pending: map[string]Confirmation{}}
}

// Request creates a pending confirmation for the product.
func (r *ConfirmationRegistry) Request(productID uint, reason string) Confirmation {
	conf := Confirmation{
		Token:     uuid.NewString(),
		ProductID: productID,
		Reason:    reason,
	}
	r.pending[conf.Token] = conf
	return conf
}

// Redeem consumes the token if it exists and belongs to the product.
func (r *ConfirmationRegistry) Redeem(token string, productID uint) bool {
	conf, ok := r.pending[token]
	if !ok || conf.ProductID != productID {
		return false
	}
	delete(r.pending, token)
	return true
}
