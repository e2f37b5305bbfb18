package pos

import (
	"testing"
	"time"

	"pharma-pos/internal/database"
	"pharma-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	return db
}

func createProduct(t *testing.T, db *gorm.DB, p models.Product) models.Product {
	t.Helper()
	if p.ExpiryDate.IsZero() {
		p.ExpiryDate = time.Now().AddDate(1, 0, 0)
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestCheckoutCommitsStockLedgerAndAudit(t *testing.T) {
	db := newTestDB(t)
	proc := NewProcessor(db, zaptest.NewLogger(t))

	pA := createProduct(t, db, models.Product{Name: "Panadol 500mg", Price: 100, CostPrice: 80, Stock: 10, BatchNumber: "PB1"})
	pB := createProduct(t, db, models.Product{Name: "Lexotanil 3mg", Price: 320, CostPrice: 255, Stock: 5, IsNarcotic: true, BatchNumber: "LX1"})

	now := time.Now()
	cart := NewCart()
	_, err := cart.Add(pA, false, now)
	require.NoError(t, err)
	_, err = cart.Add(pA, false, now)
	require.NoError(t, err)
	_, err = cart.Add(pB, false, now)
	require.NoError(t, err)

	sale, err := proc.Checkout(cart, 17, models.PaymentCash, 3, "Bilal Ahmed")
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.InDelta(t, 520, sale.Subtotal, 1e-9)
	assert.InDelta(t, 520*0.17, sale.TaxAmount, 1e-9)
	assert.InDelta(t, 520*1.17, sale.TotalAmount, 1e-9)
	assert.True(t, cart.Empty(), "cart clears only after a successful commit")

	var gotA, gotB models.Product
	require.NoError(t, db.First(&gotA, pA.ID).Error)
	require.NoError(t, db.First(&gotB, pB.ID).Error)
	assert.Equal(t, 8, gotA.Stock)
	assert.Equal(t, 4, gotB.Stock)

	var stored models.Sale
	require.NoError(t, db.Preload("Items").First(&stored, sale.ID).Error)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Lexotanil 3mg", stored.Items[1].ProductName)
	assert.True(t, stored.Items[1].IsNarcotic, "sale items snapshot the narcotic flag")

	var audits int64
	require.NoError(t, db.Model(&models.AuditLog{}).Where("action = ?", "pos.checkout").Count(&audits).Error)
	assert.EqualValues(t, 1, audits)
}

func TestCheckoutAbortsWhollyOnShortfall(t *testing.T) {
	db := newTestDB(t)
	proc := NewProcessor(db, zaptest.NewLogger(t))

	pA := createProduct(t, db, models.Product{Name: "Panadol 500mg", Price: 100, Stock: 10})
	pB := createProduct(t, db, models.Product{Name: "Brufen Syrup", Price: 125, Stock: 3})

	now := time.Now()
	cart := NewCart()
	_, err := cart.Add(pA, false, now)
	require.NoError(t, err)
	_, err = cart.Add(pB, false, now)
	require.NoError(t, err)
	_, err = cart.Add(pB, false, now)
	require.NoError(t, err)

	// Stock for B drops behind the cart's back before checkout.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", pB.ID).Update("stock", 1).Error)

	_, err = proc.Checkout(cart, 17, models.PaymentCash, 3, "Bilal Ahmed")
	assert.ErrorIs(t, err, ErrStockInsufficient)

	var gotA, gotB models.Product
	require.NoError(t, db.First(&gotA, pA.ID).Error)
	require.NoError(t, db.First(&gotB, pB.ID).Error)
	assert.Equal(t, 10, gotA.Stock, "no partial decrement on abort")
	assert.Equal(t, 1, gotB.Stock)

	var sales, audits int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&sales).Error)
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&audits).Error)
	assert.Zero(t, sales, "no sale without the stock decrement")
	assert.Zero(t, audits)

	assert.Len(t, cart.Lines(), 2, "a failed checkout leaves the cart for the cashier to fix")
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	proc := NewProcessor(db, zaptest.NewLogger(t))

	_, err := proc.Checkout(NewCart(), 17, models.PaymentCash, 1, "Sana Tariq")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	proc := NewProcessor(db, zaptest.NewLogger(t))

	p := createProduct(t, db, models.Product{Name: "Panadol 500mg", Price: 100, Stock: 10})
	cart := NewCart()
	_, err := cart.Add(p, false, time.Now())
	require.NoError(t, err)

	_, err = proc.Checkout(cart, 17, "Cheque", 1, "Sana Tariq")
	assert.ErrorIs(t, err, ErrInvalidPayment)
	assert.Len(t, cart.Lines(), 1)
}

func TestCheckoutProductDeletedSinceAdd(t *testing.T) {
	db := newTestDB(t)
	proc := NewProcessor(db, zaptest.NewLogger(t))

	p := createProduct(t, db, models.Product{Name: "Polyfax", Price: 95, Stock: 3})
	cart := NewCart()
	_, err := cart.Add(p, false, time.Now())
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Product{}, p.ID).Error)

	_, err = proc.Checkout(cart, 17, models.PaymentCash, 1, "Sana Tariq")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var sales int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&sales).Error)
	assert.Zero(t, sales)
}
