package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pharma-pos/internal/audit"
	"pharma-pos/internal/database"
	"pharma-pos/internal/inventory"
	"pharma-pos/internal/models"
	"pharma-pos/internal/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductHandler serves the catalog: listing, search, alerts, and CRUD.
type ProductHandler struct {
	db       *gorm.DB
	settings *settings.Service
	logger   *zap.Logger
}

func NewProductHandler(db *gorm.DB, settings *settings.Service, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{db: db, settings: settings, logger: logger}
}

// List returns the catalog, optionally narrowed by ?search= over name, generic
// name, barcode and SKU.
func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.Order("name").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, inventory.Search(products, c.Query("search")))
}

// Scan looks a product up by its exact barcode.
func (h *ProductHandler) Scan(c *gin.Context) {
	var product models.Product
	if err := h.db.Where("barcode = ?", c.Param("barcode")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No product with that barcode"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Alerts computes the low-stock, near-expiry, and expired views. Read-only.
func (h *ProductHandler) Alerts(c *gin.Context) {
	var products []models.Product
	if err := h.db.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"low_stock":   inventory.LowStock(products, h.settings.LowStockDefault()),
		"near_expiry": inventory.NearExpiry(products, h.settings.ExpiryAlertDays(), now),
		"expired":     inventory.Expired(products, now),
	})
}

// ProductInput carries the editable fields of a product form.
type ProductInput struct {
	Name                 string    `json:"name"`
	GenericName          string    `json:"generic_name"`
	Strength             string    `json:"strength"`
	Form                 string    `json:"form"`
	Category             string    `json:"category"`
	Price                float64   `json:"price"`
	CostPrice            float64   `json:"cost_price"`
	Stock                int       `json:"stock"`
	ExpiryDate           time.Time `json:"expiry_date"`
	Barcode              string    `json:"barcode"`
	SKU                  string    `json:"sku"`
	BatchNumber          string    `json:"batch_number"`
	Supplier             string    `json:"supplier"`
	PackSize             int       `json:"pack_size"`
	ReorderLevel         int       `json:"reorder_level"`
	Location             string    `json:"location"`
	RequiresPrescription bool      `json:"requires_prescription"`
	IsNarcotic           bool      `json:"is_narcotic"`
	WarningNote          string    `json:"warning_note"`
}

// validate returns field-level messages; an empty map means the form is good.
// On create the expiry must still be ahead; updates keep whatever date stands so
// an expired batch can still be corrected.
func (in ProductInput) validate(creating bool, now time.Time) map[string]string {
	problems := map[string]string{}
	if in.Name == "" {
		problems["name"] = "Product name is required"
	}
	if in.Price <= 0 {
		problems["price"] = "Price must be greater than zero"
	}
	if in.CostPrice > in.Price {
		problems["cost_price"] = "Cost price cannot exceed sale price"
	}
	if in.Stock < 0 {
		problems["stock"] = "Stock cannot be negative"
	}
	if creating && !in.ExpiryDate.After(now) {
		problems["expiry_date"] = "Expiry date must be in the future"
	}
	return problems
}

func (in ProductInput) apply(p *models.Product) {
	p.Name = in.Name
	p.GenericName = in.GenericName
	p.Strength = in.Strength
	p.Form = in.Form
	p.Category = in.Category
	p.Price = in.Price
	p.CostPrice = in.CostPrice
	p.Stock = in.Stock
	p.ExpiryDate = in.ExpiryDate
	p.Barcode = in.Barcode
	p.SKU = in.SKU
	p.BatchNumber = in.BatchNumber
	p.Supplier = in.Supplier
	p.PackSize = in.PackSize
	p.ReorderLevel = in.ReorderLevel
	p.Location = in.Location
	p.RequiresPrescription = in.RequiresPrescription
	p.IsNarcotic = in.IsNarcotic
	p.WarningNote = in.WarningNote
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if problems := input.validate(true, time.Now()); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": problems})
		return
	}

	var product models.Product
	input.apply(&product)
	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update rewrites a product's editable fields.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if problems := input.validate(false, time.Now()); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": problems})
		return
	}

	input.apply(&product)
	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// Delete removes a product unless the ledger references it.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	if err := database.DeleteProduct(h.db, uint(id)); err != nil {
		switch {
		case errors.Is(err, database.ErrProductInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete: product appears in recorded sales"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
		return
	}

	userID := c.GetUint("userID")
	userName := c.GetString("userName")
	if err := audit.Record(h.db, userID, userName, "products.delete", fmt.Sprintf("product %d removed", id)); err != nil {
		h.logger.Warn("audit write failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
