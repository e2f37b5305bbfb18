package settings

import (
	"strconv"
	"strings"

	"pharma-pos/internal/models"

	"gorm.io/gorm"
)

// Keys consulted by the POS and inventory views.
const (
	KeyTaxRate         = "tax_rate"
	KeyExpiryAlertDays = "expiry_alert_days"
	KeyLowStockDefault = "low_stock_limit_default"
)

// Defaults used when a key is missing or unparsable. Lookups never fail, they
// only fall back.
const (
	DefaultTaxRate         = 0.0
	DefaultExpiryAlertDays = 30
	DefaultLowStockLimit   = 10
)

// Service reads and writes the settings registry.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Number returns the numeric value stored under key, or fallback when the key is
// absent or not a number.
func (s *Service) Number(key string, fallback float64) float64 {
	var row models.AppSetting
	if err := s.db.Where("setting_key = ?", key).First(&row).Error; err != nil {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row.Value), 64)
	if err != nil {
		return fallback
	}
	return v
}

// TaxRate is the checkout tax percentage.
func (s *Service) TaxRate() float64 {
	return s.Number(KeyTaxRate, DefaultTaxRate)
}

// ExpiryAlertDays is the near-expiry alert window.
func (s *Service) ExpiryAlertDays() int {
	return int(s.Number(KeyExpiryAlertDays, DefaultExpiryAlertDays))
}

// LowStockDefault is the low-stock threshold for products without a reorder level.
func (s *Service) LowStockDefault() int {
	return int(s.Number(KeyLowStockDefault, DefaultLowStockLimit))
}

// List returns every settings row, stable by key.
func (s *Service) List() ([]models.AppSetting, error) {
	var rows []models.AppSetting
	if err := s.db.Order("setting_key").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Set updates an existing key or creates it.
func (s *Service) Set(key, value string) (models.AppSetting, error) {
	var row models.AppSetting
	err := s.db.Where("setting_key = ?", key).First(&row).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return models.AppSetting{}, err
		}
		row = models.AppSetting{Key: key, Value: value}
		return row, s.db.Create(&row).Error
	}
	row.Value = value
	return row, s.db.Save(&row).Error
}
