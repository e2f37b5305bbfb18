package database

import (
	"time"

	"pharma-pos/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the mock fixtures into an empty store: three staff accounts, the
// default settings, and a small pharmacy catalog. A store that already has users
// is left alone.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []struct {
		name, email, password, role string
	}{
		{"Adeel Khan", "admin@pharmacy.local", "admin123", models.RoleAdmin},
		{"Sana Tariq", "pharmacist@pharmacy.local", "pharma123", models.RolePharmacist},
		{"Bilal Ahmed", "cashier@pharmacy.local", "cashier123", models.RoleCashier},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := db.Create(&models.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Status:       models.StatusActive,
		}).Error; err != nil {
			return err
		}
	}

	settings := []models.AppSetting{
		{Key: "tax_rate", Value: "17", Description: "Sales tax applied at checkout (%)", Group: "pos"},
		{Key: "expiry_alert_days", Value: "30", Description: "Days before expiry to flag a product", Group: "inventory"},
		{Key: "low_stock_limit_default", Value: "10", Description: "Low-stock threshold when a product has no reorder level", Group: "inventory"},
		{Key: "store_name", Value: "City Care Pharmacy", Description: "Name printed on receipts", Group: "store"},
		{Key: "receipt_footer", Value: "Thank you. Medicines once sold cannot be returned.", Description: "Footer line on receipts", Group: "store"},
		{Key: "currency", Value: "PKR", Description: "Display currency", Group: "store"},
	}
	if err := db.Create(&settings).Error; err != nil {
		return err
	}

	now := time.Now()
	products := []models.Product{
		{
			Name: "Panadol 500mg", GenericName: "Paracetamol", Strength: "500mg", Form: "Tablet",
			Category: "Analgesic", Price: 50, CostPrice: 38, Stock: 240,
			ExpiryDate: now.AddDate(1, 6, 0), Barcode: "8961100210011", SKU: "PAN-500",
			BatchNumber: "PB2415", Supplier: "GSK Distribution", PackSize: 200, ReorderLevel: 50,
			Location: "A1",
		},
		{
			Name: "Augmentin 625mg", GenericName: "Co-Amoxiclav", Strength: "625mg", Form: "Tablet",
			Category: "Antibiotic", Price: 580, CostPrice: 470, Stock: 60,
			ExpiryDate: now.AddDate(0, 11, 0), Barcode: "8961100210028", SKU: "AUG-625",
			BatchNumber: "AG0931", Supplier: "GSK Distribution", PackSize: 6, ReorderLevel: 15,
			Location: "A3", RequiresPrescription: true,
		},
		{
			Name: "Brufen Syrup 120ml", GenericName: "Ibuprofen", Strength: "100mg/5ml", Form: "Syrup",
			Category: "Analgesic", Price: 125, CostPrice: 96, Stock: 34,
			ExpiryDate: now.AddDate(0, 8, 0), Barcode: "8961100210035", SKU: "BRU-120",
			BatchNumber: "BF5520", Supplier: "Abbott", PackSize: 1, ReorderLevel: 10,
			Location: "B2", WarningNote: "Shake well before use. Not for infants under 6 months.",
		},
		{
			Name: "Lexotanil 3mg", GenericName: "Bromazepam", Strength: "3mg", Form: "Tablet",
			Category: "Sedative", Price: 320, CostPrice: 255, Stock: 18,
			ExpiryDate: now.AddDate(1, 2, 0), Barcode: "8961100210042", SKU: "LEX-3",
			BatchNumber: "LX7718", Supplier: "Roche", PackSize: 30, ReorderLevel: 8,
			Location: "Controlled cabinet", RequiresPrescription: true, IsNarcotic: true,
		},
		{
			Name: "Insulatard Flexpen", GenericName: "Insulin NPH", Strength: "100IU/ml", Form: "Injection",
			Category: "Diabetes", Price: 1350, CostPrice: 1140, Stock: 7,
			ExpiryDate: now.AddDate(0, 0, 20), Barcode: "8961100210059", SKU: "INS-FP",
			BatchNumber: "IN2203", Supplier: "Novo Nordisk", PackSize: 1, ReorderLevel: 5,
			Location: "Fridge", RequiresPrescription: true,
			WarningNote: "Keep refrigerated at 2-8°C.",
		},
		{
			Name: "Polyfax Skin Ointment", GenericName: "Polymyxin B + Bacitracin", Strength: "20g", Form: "Ointment",
			Category: "Dermatology", Price: 95, CostPrice: 72, Stock: 3,
			ExpiryDate: now.AddDate(0, 4, 0), Barcode: "8961100210066", SKU: "POL-20",
			BatchNumber: "PF1108", Supplier: "GSK Distribution", PackSize: 1, ReorderLevel: 0,
			Location: "B4",
		},
		{
			Name: "Hydryllin Syrup", GenericName: "Aminophylline + Diphenhydramine", Strength: "120ml", Form: "Syrup",
			Category: "Respiratory", Price: 110, CostPrice: 84, Stock: 22,
			ExpiryDate: now.AddDate(0, 0, -10), Barcode: "8961100210073", SKU: "HYD-120",
			BatchNumber: "HD0419", Supplier: "Searle", PackSize: 1, ReorderLevel: 6,
			Location: "B1",
		},
	}
	return db.Create(&products).Error
}
