package pos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldRejectsEmptyCart(t *testing.T) {
	reg := NewHoldRegistry()
	_, err := reg.Hold(NewCart(), 0, 1, "Bilal Ahmed", "", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, reg.List())
}

func TestHoldResumeRoundTrip(t *testing.T) {
	now := time.Now()
	cart := NewCart()
	_, err := cart.Add(fixtureProduct(1, 100, 10), false, now)
	require.NoError(t, err)
	_, err = cart.Add(fixtureProduct(2, 50, 10), false, now)
	require.NoError(t, err)

	wantLines := cart.Lines()
	wantTotal := cart.Total(17)

	registry := NewHoldRegistry()
	heldSale, err := registry.Hold(cart, wantTotal, 3, "Bilal Ahmed", "customer fetching cash", now)
	require.NoError(t, err)
	assert.True(t, cart.Empty(), "holding clears the active cart")
	require.Len(t, registry.List(), 1)

	resumed, err := registry.Resume(heldSale.ID, cart)
	require.NoError(t, err)
	assert.Equal(t, wantLines, cart.Lines())
	assert.InDelta(t, wantTotal, cart.Total(17), 1e-9)
	assert.Equal(t, heldSale.ID, resumed.ID)
	assert.Empty(t, registry.List(), "resume removes the held entry")

	_, err = registry.Resume(heldSale.ID, cart)
	assert.ErrorIs(t, err, ErrHeldSaleNotFound, "a held sale resumes at most once")
}

func TestHoldDefaultsNoteToTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)
	cart := NewCart()
	_, err := cart.Add(fixtureProduct(1, 100, 10), false, now)
	require.NoError(t, err)

	registry := NewHoldRegistry()
	held, err := registry.Hold(cart, 100, 1, "Sana Tariq", "", now)
	require.NoError(t, err)
	assert.Equal(t, now.Format("02 Jan 2006 15:04"), held.Note)
}

func TestResumeReplacesActiveCart(t *testing.T) {
	now := time.Now()
	cart := NewCart()
	_, err := cart.Add(fixtureProduct(1, 100, 10), false, now)
	require.NoError(t, err)

	registry := NewHoldRegistry()
	held, err := registry.Hold(cart, 100, 1, "Sana Tariq", "", now)
	require.NoError(t, err)

	_, err = cart.Add(fixtureProduct(2, 50, 10), false, now)
	require.NoError(t, err)

	_, err = registry.Resume(held.ID, cart)
	require.NoError(t, err)
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, uint(1), cart.Lines()[0].Product.ID)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	now := time.Now()
	registry := NewHoldRegistry()

	for i := uint(1); i <= 3; i++ {
		cart := NewCart()
		_, err := cart.Add(fixtureProduct(i, 10, 10), false, now)
		require.NoError(t, err)
		_, err = registry.Hold(cart, 10, 1, "Bilal Ahmed", "", now)
		require.NoError(t, err)
	}

	list := registry.List()
	require.Len(t, list, 3)
	for i, held := range list {
		assert.Equal(t, uint(i+1), held.Lines[0].Product.ID)
	}
}
