package inventory

import (
	"strings"
	"time"

	"pharma-pos/internal/models"
)

// LowStock returns products at or below their reorder level. A reorder level of
// zero means "unset" and falls back to defaultThreshold; it does not mean
// "alert always". That quirk is preserved from the original system.
func LowStock(products []models.Product, defaultThreshold int) []models.Product {
	var out []models.Product
	for _, p := range products {
		threshold := p.ReorderLevel
		if threshold == 0 {
			threshold = defaultThreshold
		}
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// NearExpiry returns products expiring within alertDays of now. Already-expired
// products are excluded here; they show up in Expired and are blocked from sale.
func NearExpiry(products []models.Product, alertDays int, now time.Time) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Expired(now) {
			continue
		}
		if DaysUntil(p.ExpiryDate, now) <= alertDays {
			out = append(out, p)
		}
	}
	return out
}

// Expired returns products whose expiry date has passed.
func Expired(products []models.Product, now time.Time) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Expired(now) {
			out = append(out, p)
		}
	}
	return out
}

// DaysUntil counts whole days from now until the given date. A date later today
// counts as zero days.
func DaysUntil(date time.Time, now time.Time) int {
	return int(date.Sub(now).Hours() / 24)
}

// Search matches query case-insensitively as a substring of name, generic name,
// barcode, or SKU. An empty query returns the input unchanged.
func Search(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.GenericName), q) ||
			strings.Contains(strings.ToLower(p.Barcode), q) ||
			strings.Contains(strings.ToLower(p.SKU), q) {
			out = append(out, p)
		}
	}
	return out
}
