package database

import (
	"testing"
	"time"

	"pharma-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	return db
}

func TestDeleteProductWithoutSales(t *testing.T) {
	db := newTestDB(t)
	p := models.Product{Name: "Polyfax", Price: 95, Stock: 3, ExpiryDate: time.Now().AddDate(0, 6, 0)}
	require.NoError(t, db.Create(&p).Error)

	require.NoError(t, DeleteProduct(db, p.ID))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProductReferencedBySaleRefused(t *testing.T) {
	db := newTestDB(t)
	p := models.Product{Name: "Panadol 500mg", Price: 50, Stock: 10, ExpiryDate: time.Now().AddDate(1, 0, 0)}
	require.NoError(t, db.Create(&p).Error)

	sale := models.Sale{
		Number:   "S-1",
		SaleTime: time.Now(),
		Items: []models.SaleItem{
			{ProductID: p.ID, ProductName: p.Name, Quantity: 1, UnitPrice: p.Price},
		},
		TotalAmount: 50,
	}
	require.NoError(t, db.Create(&sale).Error)

	err := DeleteProduct(db, p.ID)
	assert.ErrorIs(t, err, ErrProductInUse)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "refused delete must not touch the catalog")
}

func TestDeleteProductMissing(t *testing.T) {
	db := newTestDB(t)
	err := DeleteProduct(db, 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var users, products, settings int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.AppSetting{}).Count(&settings).Error)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 7, products)
	assert.EqualValues(t, 6, settings)
}
