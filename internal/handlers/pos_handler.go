package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pharma-pos/internal/models"
	"pharma-pos/internal/pos"
	"pharma-pos/internal/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// POSHandler owns the terminal session state: the active cart, the held-sale
// registry, and the pending prescription confirmations. One terminal, one
// session, one cart; mutations run one at a time on the request path.
type POSHandler struct {
	db        *gorm.DB
	settings  *settings.Service
	processor *pos.Processor
	cart      *pos.Cart
	holds     *pos.HoldRegistry
	confirms  *pos.ConfirmationRegistry
	logger    *zap.Logger
}

func NewPOSHandler(db *gorm.DB, settings *settings.Service, processor *pos.Processor, logger *zap.Logger) *POSHandler {
	return &POSHandler{
		db:        db,
		settings:  settings,
		processor: processor,
		cart:      pos.NewCart(),
		holds:     pos.NewHoldRegistry(),
		confirms:  pos.NewConfirmationRegistry(),
		logger:    logger,
	}
}

func (h *POSHandler) cartPayload() gin.H {
	taxRate := h.settings.TaxRate()
	return gin.H{
		"lines":    h.cart.Lines(),
		"subtotal": h.cart.Subtotal(),
		"tax_rate": taxRate,
		"tax":      h.cart.Tax(taxRate),
		"total":    h.cart.Total(taxRate),
	}
}

// GetCart returns the active cart with its computed totals.
func (h *POSHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartPayload())
}

type addItemRequest struct {
	ProductID         uint   `json:"product_id" binding:"required"`
	ConfirmationToken string `json:"confirmation_token"`
}

// AddItem puts one unit of a product in the cart. A prescription item without a
// redeemed confirmation token comes back 409 with a fresh token; re-posting with
// that token commits the add. Declining is simply never re-posting.
func (h *POSHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var product models.Product
	if err := h.db.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	confirmed := false
	if product.RequiresPrescription && req.ConfirmationToken != "" {
		confirmed = h.confirms.Redeem(req.ConfirmationToken, product.ID)
	}

	warning, err := h.cart.Add(product, confirmed, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, pos.ErrExpiredProduct):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": product.Name + " is expired and cannot be sold"})
		case errors.Is(err, pos.ErrPrescriptionRequired):
			conf := h.confirms.Request(product.ID, product.Name+" requires a prescription")
			c.JSON(http.StatusConflict, gin.H{
				"error":              "Prescription confirmation required",
				"confirmation_token": conf.Token,
				"reason":             conf.Reason,
			})
		case errors.Is(err, pos.ErrStockInsufficient):
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock for " + product.Name})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		}
		return
	}

	payload := h.cartPayload()
	if warning != "" {
		payload["warning"] = warning
	}
	c.JSON(http.StatusOK, payload)
}

type adjustItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustItem steps a line's quantity by ±1. A step past current stock is
// rejected with a notice; stepping to zero removes the line.
func (h *POSHandler) AdjustItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var req adjustItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Delta != 1 && req.Delta != -1) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta must be 1 or -1"})
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := h.cart.AdjustQuantity(uint(id), req.Delta, product.Stock); err != nil {
		switch {
		case errors.Is(err, pos.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item is not in the cart"})
		case errors.Is(err, pos.ErrStockInsufficient):
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock for " + product.Name})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust quantity"})
		}
		return
	}

	c.JSON(http.StatusOK, h.cartPayload())
}

// RemoveItem drops a line unconditionally.
func (h *POSHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}
	h.cart.Remove(uint(id))
	c.JSON(http.StatusOK, h.cartPayload())
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// Checkout commits the active cart: stock decrement, ledger append, and audit
// entry all land or none do.
func (h *POSHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := c.GetUint("userID")
	userName := c.GetString("userName")

	sale, err := h.processor.Checkout(h.cart, h.settings.TaxRate(), req.PaymentMethod, userID, userName)
	if err != nil {
		switch {
		case errors.Is(err, pos.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, pos.ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		case errors.Is(err, pos.ErrStockInsufficient):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "A cart item no longer exists in the catalog"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process sale"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sale successful!",
		"sale":    sale,
	})
}

type holdRequest struct {
	Note string `json:"note"`
}

// Hold parks the active cart in the held-sale registry and clears it.
func (h *POSHandler) Hold(c *gin.Context) {
	var req holdRequest
	_ = c.ShouldBindJSON(&req) // note is optional; an empty body is fine

	total := h.cart.Total(h.settings.TaxRate())
	held, err := h.holds.Hold(h.cart, total, c.GetUint("userID"), c.GetString("userName"), req.Note, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	h.logger.Info("sale held", zap.String("id", held.ID), zap.Float64("total", held.Total))
	c.JSON(http.StatusOK, gin.H{"held_sale": held, "cart": h.cartPayload()})
}

// ListHeld returns the parked sales in insertion order.
func (h *POSHandler) ListHeld(c *gin.Context) {
	c.JSON(http.StatusOK, h.holds.List())
}

// Resume restores a held sale into the active cart and removes it from the
// registry. Resuming the same id twice fails the second time.
func (h *POSHandler) Resume(c *gin.Context) {
	held, err := h.holds.Resume(c.Param("id"), h.cart)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Held sale not found"})
		return
	}

	h.logger.Info("sale resumed", zap.String("id", held.ID))
	c.JSON(http.StatusOK, h.cartPayload())
}
