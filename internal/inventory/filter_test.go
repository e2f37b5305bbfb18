package inventory

import (
	"testing"
	"time"

	"pharma-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStockUsesReorderLevel(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "at level", ReorderLevel: 3, Stock: 3},
		{ID: 2, Name: "above level", ReorderLevel: 3, Stock: 4},
	}

	low := LowStock(products, 10)
	require.Len(t, low, 1)
	assert.Equal(t, uint(1), low[0].ID)
}

func TestLowStockZeroReorderFallsBackToDefault(t *testing.T) {
	// A reorder level of 0 means "unset", not "alert always".
	products := []models.Product{
		{ID: 1, ReorderLevel: 0, Stock: 5},
		{ID: 2, ReorderLevel: 0, Stock: 6},
	}

	low := LowStock(products, 5)
	require.Len(t, low, 1)
	assert.Equal(t, uint(1), low[0].ID)
}

func TestNearExpiryWindow(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		{ID: 1, ExpiryDate: now.AddDate(0, 0, 10)},
		{ID: 2, ExpiryDate: now.AddDate(0, 0, 45)},
		{ID: 3, ExpiryDate: now.AddDate(0, 0, -2)},
	}

	near := NearExpiry(products, 30, now)
	require.Len(t, near, 1)
	assert.Equal(t, uint(1), near[0].ID)

	expired := Expired(products, now)
	require.Len(t, expired, 1)
	assert.Equal(t, uint(3), expired[0].ID, "expired products are flagged separately, never near-expiry")
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysUntil(now.Add(6*time.Hour), now), "later today counts as zero days")
	assert.Equal(t, 30, DaysUntil(now.AddDate(0, 0, 30), now))
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Panadol 500mg", GenericName: "Paracetamol", Barcode: "8961100210011", SKU: "PAN-500"},
		{ID: 2, Name: "Augmentin 625mg", GenericName: "Co-Amoxiclav", Barcode: "8961100210028", SKU: "AUG-625"},
	}

	cases := map[string]uint{
		"panadol":    1,
		"PARACETAMOL": 1,
		"0028":       2,
		"aug-":       2,
	}
	for query, wantID := range cases {
		got := Search(products, query)
		require.Len(t, got, 1, "query %q", query)
		assert.Equal(t, wantID, got[0].ID, "query %q", query)
	}

	assert.Len(t, Search(products, ""), 2, "empty query returns everything")
	assert.Empty(t, Search(products, "insulin"))
}
