package pos

import (
	"fmt"
	"time"

	"pharma-pos/internal/audit"
	"pharma-pos/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Processor commits a cart to the catalog and the sale ledger.
type Processor struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProcessor(db *gorm.DB, logger *zap.Logger) *Processor {
	return &Processor{db: db, logger: logger}
}

// Checkout decrements stock for every line, appends the sale with flattened item
// snapshots, and records an audit entry, all inside one transaction. Any stock
// shortfall aborts the whole operation with no partial decrement; the cart is
// cleared only after the commit, so catalog and ledger stay mutually consistent.
func (p *Processor) Checkout(cart *Cart, taxRate float64, payment string, userID uint, userName string) (*models.Sale, error) {
	if cart.Empty() {
		return nil, ErrEmptyCart
	}
	if !models.ValidPaymentMethod(payment) {
		return nil, ErrInvalidPayment
	}

	sale := &models.Sale{
		Number:        uuid.NewString(),
		SaleTime:      time.Now(),
		Subtotal:      cart.Subtotal(),
		TaxRate:       taxRate,
		TaxAmount:     cart.Tax(taxRate),
		TotalAmount:   cart.Total(taxRate),
		PaymentMethod: payment,
		UserID:        userID,
		UserName:      userName,
	}

	err := p.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range cart.Lines() {
			var product models.Product
			if err := tx.First(&product, line.Product.ID).Error; err != nil {
				return fmt.Errorf("product %d: %w", line.Product.ID, err)
			}

			// Re-check against live stock; the cart snapshot may be stale.
			if product.Stock < line.Quantity {
				return fmt.Errorf("%w: %s", ErrStockInsufficient, product.Name)
			}

			product.Stock -= line.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			sale.Items = append(sale.Items, models.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   line.Product.Price,
				UnitCost:    line.Product.CostPrice,
				BatchNumber: product.BatchNumber,
				IsNarcotic:  product.IsNarcotic,
			})
		}

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		detail := fmt.Sprintf("sale %s, %d items, total %.2f", sale.Number, len(sale.Items), sale.TotalAmount)
		return audit.Record(tx, userID, userName, "pos.checkout", detail)
	})
	if err != nil {
		sale.Items = nil
		return nil, err
	}

	p.logger.Info("sale committed",
		zap.String("number", sale.Number),
		zap.Int("items", len(sale.Items)),
		zap.Float64("total", sale.TotalAmount),
		zap.String("payment", payment),
	)

	cart.Clear()
	return sale, nil
}
