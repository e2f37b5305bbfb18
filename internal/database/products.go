package database

import (
	"errors"

	"pharma-pos/internal/models"

	"gorm.io/gorm"
)

// ErrProductInUse is returned when a delete would orphan recorded sale items.
var ErrProductInUse = errors.New("product is referenced by recorded sales")

// DeleteProduct removes a product from the catalog. A product referenced by any
// sale item is refused outright: the ledger keeps snapshots, but the reference is
// kept intact for the controlled-drug register.
func DeleteProduct(db *gorm.DB, id uint) error {
	var refs int64
	if err := db.Model(&models.SaleItem{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrProductInUse
	}

	res := db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
