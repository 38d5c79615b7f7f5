package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/middleware"
	"github.com/staicu8/OnlineShop/models"
)

var (
	ErrProductNotAvailable = errors.New("product not available")
	ErrStockExceeded       = errors.New("requested quantity exceeds available stock")
)

type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// AddItem merges the requested quantity into the user's cart line for the
// product. The combined quantity may never exceed current stock; on violation
// nothing changes.
func AddItem(db *gorm.DB, userID string, productID uint, quantity int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ? AND status = ?", productID, models.ProductStatusApproved).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotAvailable
			}
			return err
		}
		if quantity > product.Stock {
			return ErrStockExceeded
		}

		var item models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}).Error
		}
		if err != nil {
			return err
		}

		if item.Quantity+quantity > product.Stock {
			return ErrStockExceeded
		}
		item.Quantity += quantity
		item.AddedAt = time.Now()
		return tx.Save(&item).Error
	})
}

// SetQuantity replaces a cart line's quantity. Zero or less removes the line;
// anything above current stock fails without mutation.
func SetQuantity(db *gorm.DB, userID string, productID uint, quantity int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
			return err
		}

		if quantity <= 0 {
			return tx.Delete(&item).Error
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return err
		}
		if quantity > product.Stock {
			return ErrStockExceeded
		}

		item.Quantity = quantity
		return tx.Save(&item).Error
	})
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Order("added_at ASC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		type cartLine struct {
			models.CartItem
			Subtotal float64 `json:"subtotal"`
		}
		lines := make([]cartLine, 0, len(items))
		var total float64
		for _, item := range items {
			sub := item.Subtotal()
			total += sub
			lines = append(lines, cartLine{CartItem: item, Subtotal: sub})
		}

		c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
	}
}

// POST /cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		switch err := AddItem(db, userID, req.ProductID, req.Quantity); {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Added to cart"})
		case errors.Is(err, ErrProductNotAvailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist or is not approved"})
		case errors.Is(err, ErrStockExceeded):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Requested quantity exceeds available stock"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		}
	}
}

// PUT /cart/:product_id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		switch err := SetQuantity(db, userID, uint(productID), req.Quantity); {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		case errors.Is(err, ErrStockExceeded):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Requested quantity exceeds available stock"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		}
	}
}

// DELETE /cart/:product_id
// Removing an absent line is a success, not an error.
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID := c.Param("product_id")
		if err := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
