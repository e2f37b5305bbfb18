package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationRedeemsExactlyOnce(t *testing.T) {
	reg := NewConfirmationRegistry()
	conf := reg.Request(7, "Augmentin 625mg requires a prescription")

	assert.True(t, reg.Redeem(conf.Token, 7))
	assert.False(t, reg.Redeem(conf.Token, 7), "a token is consumed on redeem")
}

func TestConfirmationBoundToProduct(t *testing.T) {
	reg := NewConfirmationRegistry()
	conf := reg.Request(7, "requires a prescription")

	assert.False(t, reg.Redeem(conf.Token, 8), "token for one product must not confirm another")
	assert.True(t, reg.Redeem(conf.Token, 7), "a failed redeem must not consume the token")
}

func TestConfirmationUnknownToken(t *testing.T) {
	reg := NewConfirmationRegistry()
	assert.False(t, reg.Redeem("nope", 1))
}
