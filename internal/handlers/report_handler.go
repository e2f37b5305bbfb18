package handlers

import (
	"net/http"

	"pharma-pos/internal/database"
	"pharma-pos/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportHandler serves the analytics screens off the sale ledger and catalog.
type ReportHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewReportHandler(db *gorm.DB, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{db: db, logger: logger}
}

// --- GET: /api/reports ---
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	data, err := database.GetSalesSummary(h.db)
	if err != nil {
		h.logger.Error("sales summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// ValuationItem represents a single row in the valuation table
type ValuationItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	CostPrice float64 `json:"cost_price"`
	TotalCost float64 `json:"total_cost"`
}

// CategoryGroup represents one category's table (e.g., "Antibiotic")
type CategoryGroup struct {
	CategoryName string          `json:"category_name"`
	Items        []ValuationItem `json:"items"`
	Subtotal     float64         `json:"subtotal"`
}

// ValuationResponse is the final payload
type ValuationResponse struct {
	Categories []CategoryGroup `json:"categories"`
	GrandTotal float64         `json:"grand_total"`
}

// --- GET: /api/reports/valuation ---
// GetStockValuation calculates the total monetary value of all physical inventory
func (h *ReportHandler) GetStockValuation(c *gin.Context) {
	var products []models.Product
	if err := h.db.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	var grandTotal float64
	groupedMap := make(map[string]*CategoryGroup)

	for _, p := range products {
		catName := p.Category
		if catName == "" {
			catName = "Uncategorized"
		}

		if _, exists := groupedMap[catName]; !exists {
			groupedMap[catName] = &CategoryGroup{
				CategoryName: catName,
				Items:        []ValuationItem{},
			}
		}

		itemTotal := float64(p.Stock) * p.CostPrice
		groupedMap[catName].Items = append(groupedMap[catName].Items, ValuationItem{
			Name:      p.Name,
			Quantity:  p.Stock,
			CostPrice: p.CostPrice,
			TotalCost: itemTotal,
		})
		groupedMap[catName].Subtotal += itemTotal
		grandTotal += itemTotal
	}

	var response ValuationResponse
	response.GrandTotal = grandTotal
	for _, group := range groupedMap {
		response.Categories = append(response.Categories, *group)
	}

	c.JSON(http.StatusOK, response)
}

// --- GET: /api/reports/narcotics ---
// GetNarcoticRegister serves the controlled-drug sales register.
func (h *ReportHandler) GetNarcoticRegister(c *gin.Context) {
	entries, err := database.GetNarcoticRegister(h.db)
	if err != nil {
		h.logger.Error("narcotic register failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build narcotic register"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
