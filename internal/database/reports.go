package database

import (
	"time"

	"pharma-pos/internal/models"

	"gorm.io/gorm"
)

// SalesSummary holds the headline numbers for the reports screen.
type SalesSummary struct {
	TotalRevenue float64       `json:"total_revenue"`
	TotalOrders  int64         `json:"total_orders"`
	TopSelling   []TopSeller   `json:"top_selling"`
	RecentSales  []models.Sale `json:"recent_sales"`
}

// TopSeller is one row of the best-sellers table.
type TopSeller struct {
	ProductName string  `json:"product_name"`
	Sold        int     `json:"sold"`
	Revenue     float64 `json:"revenue"`
}

// GetSalesSummary aggregates the whole ledger: revenue, order count, top five
// sellers, and the ten most recent transactions.
func GetSalesSummary(db *gorm.DB) (*SalesSummary, error) {
	var data SalesSummary

	// COALESCE ensures we get 0 instead of NULL if no sales exist
	err := db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&data.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	if err := db.Model(&models.Sale{}).Count(&data.TotalOrders).Error; err != nil {
		return nil, err
	}

	err = db.Table("sale_items").
		Select("product_name, SUM(quantity) as sold, SUM(quantity * unit_price) as revenue").
		Group("product_name").
		Order("sold desc").
		Limit(5).
		Scan(&data.TopSelling).Error
	if err != nil {
		return nil, err
	}

	err = db.Preload("Items").Order("sale_time desc").Limit(10).Find(&data.RecentSales).Error
	if err != nil {
		return nil, err
	}

	return &data, nil
}

// NarcoticEntry is one line of the controlled-drug register, built from the
// immutable sale-item snapshots.
type NarcoticEntry struct {
	SaleNumber  string    `json:"sale_number"`
	SaleTime    time.Time `json:"sale_time"`
	ProductName string    `json:"product_name"`
	BatchNumber string    `json:"batch_number"`
	Quantity    int       `json:"quantity"`
	UserName    string    `json:"user_name"`
}

// GetNarcoticRegister lists every narcotic line ever sold, newest first. Regulatory
// reporting reads this; it must survive later catalog edits, which is why it joins
// the snapshot columns rather than the products table.
func GetNarcoticRegister(db *gorm.DB) ([]NarcoticEntry, error) {
	var entries []NarcoticEntry
	err := db.Table("sale_items").
		Select("sales.number as sale_number, sales.sale_time, sale_items.product_name, sale_items.batch_number, sale_items.quantity, sales.user_name").
		Joins("JOIN sales ON sale_items.sale_id = sales.id").
		Where("sale_items.is_narcotic = ?", true).
		Order("sales.sale_time desc").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
