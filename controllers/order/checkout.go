package ordercontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/middleware"
	"github.com/staicu8/OnlineShop/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// InsufficientStockError names the product that cannot be fulfilled.
type InsufficientStockError struct {
	ProductTitle string
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock for product: " + e.ProductTitle
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

// PlaceOrder converts the user's cart into an order in a single transaction:
// validate every line against current stock, snapshot unit prices into order
// items, decrement stock, total the order, clear the cart. Any failure rolls
// the whole thing back.
//
// The decrement is a conditional update guarded by `stock >= quantity`, so two
// concurrent checkouts racing on the same low-stock product cannot both
// succeed: the loser sees zero rows affected and the transaction aborts.
func PlaceOrder(db *gorm.DB, userID, shippingAddress string) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// All-or-nothing validation pass before any write.
		for _, item := range items {
			if item.Product == nil {
				return gorm.ErrRecordNotFound
			}
			if item.Quantity > item.Product.Stock {
				return &InsufficientStockError{ProductTitle: item.Product.Title}
			}
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Another checkout got there first.
				return &InsufficientStockError{ProductTitle: item.Product.Title}
			}

			total += float64(item.Quantity) * item.Product.Price
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.Price,
			})
		}

		order = models.Order{
			UserID:          userID,
			Items:           orderItems,
			TotalAmount:     total,
			Status:          models.OrderStatusPlaced,
			ShippingAddress: shippingAddress,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// POST /cart/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// Shipping address is optional; an empty body is fine.
		var req CheckoutRequest
		_ = c.ShouldBindJSON(&req)

		order, err := PlaceOrder(db, userID, req.ShippingAddress)
		if err != nil {
			var stockErr *InsufficientStockError
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}
