package models

import (
	"time"
)

// Roles a user can hold. The capability table in internal/auth maps these to actions.
const (
	RoleAdmin      = "admin"
	RolePharmacist = "pharmacist"
	RoleCashier    = "cashier"
)

// User account statuses. Inactive users cannot log in.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Payment methods accepted at checkout.
const (
	PaymentCash      = "Cash"
	PaymentEasypaisa = "Easypaisa"
	PaymentJazzCash  = "JazzCash"
)

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentEasypaisa, PaymentJazzCash:
		return true
	}
	return false
}

// User - a staff member operating the terminal
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;size:100" json:"email"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Product - one sellable item in the catalog. Stock stays non-negative because
// checkout is the only writer that decrements it.
type Product struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Name                 string    `json:"name"`
	GenericName          string    `json:"generic_name"`
	Strength             string    `json:"strength"`
	Form                 string    `json:"form"` // 'Tablet', 'Capsule', 'Syrup', ...
	Category             string    `json:"category"`
	Price                float64   `json:"price"`
	CostPrice            float64   `json:"cost_price"`
	Stock                int       `json:"stock"`
	ExpiryDate           time.Time `json:"expiry_date"`
	Barcode              string    `gorm:"index;size:64" json:"barcode"`
	SKU                  string    `gorm:"size:64" json:"sku"`
	BatchNumber          string    `json:"batch_number"`
	Supplier             string    `json:"supplier"`
	PackSize             int       `json:"pack_size"`
	ReorderLevel         int       `json:"reorder_level"`
	Location             string    `json:"location"`
	RequiresPrescription bool      `json:"requires_prescription"`
	IsNarcotic           bool      `json:"is_narcotic"`
	WarningNote          string    `json:"warning_note,omitempty"`
}

// Expired reports whether the product's expiry date is already behind now.
func (p Product) Expired(now time.Time) bool {
	return p.ExpiryDate.Before(now)
}

// Sale - the transaction header. Immutable once created; the ledger is append-only.
type Sale struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Number        string     `gorm:"uniqueIndex;size:36" json:"number"`
	SaleTime      time.Time  `json:"sale_time"`
	Items         []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
	Subtotal      float64    `json:"subtotal"`
	TaxRate       float64    `json:"tax_rate"`
	TaxAmount     float64    `json:"tax_amount"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"`
	UserID        uint       `json:"user_id"` // Who processed it
	UserName      string     `json:"user_name"`
}

// SaleItem - one sold line, flattened from the cart. A snapshot of the product at
// sale time, not a live reference: later price or cost edits don't touch it.
type SaleItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SaleID      uint    `json:"sale_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	UnitCost    float64 `json:"unit_cost"`
	BatchNumber string  `json:"batch_number"`
	IsNarcotic  bool    `json:"is_narcotic"`
}

// AppSetting - one configuration row, looked up by key. The column is named
// setting_key because KEY is reserved in MySQL.
type AppSetting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"column:setting_key;uniqueIndex;size:64" json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Group       string `gorm:"column:setting_group;size:32" json:"group"`
}

// AuditLog - append-only trail of sensitive actions (checkout, deletes, setting
// and user changes, backup exports).
type AuditLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	At       time.Time `json:"at"`
	UserID   uint      `json:"user_id"`
	UserName string    `json:"user_name"`
	Action   string    `json:"action"`
	Detail   string    `json:"detail"`
}
