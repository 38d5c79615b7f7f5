package wishlistcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/middleware"
	"github.com/staicu8/OnlineShop/models"
)

type AddWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var items []models.WishlistItem
		if err := db.
			Preload("Product").
			Preload("Product.Category").
			Where("user_id = ?", userID).
			Order("added_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /wishlist
func AddWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req AddWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Select("id").
			Where("id = ? AND status = ?", req.ProductID, models.ProductStatusApproved).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist or is not approved"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var count int64
		if err := db.Model(&models.WishlistItem{}).
			Where("user_id = ? AND product_id = ?", userID, req.ProductID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check wishlist"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Already in wishlist"})
			return
		}

		item := models.WishlistItem{UserID: userID, ProductID: req.ProductID, AddedAt: time.Now()}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /wishlist/:product_id — removing an absent item is a no-op.
func RemoveWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := db.Where("user_id = ? AND product_id = ?", userID, c.Param("product_id")).
			Delete(&models.WishlistItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// POST /wishlist/:product_id/move-to-cart
// Merges one unit into the cart line and drops the wishlist entry.
func MoveToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var item models.WishlistItem
			if err := tx.Preload("Product").
				Where("user_id = ? AND product_id = ?", userID, c.Param("product_id")).
				First(&item).Error; err != nil {
				return err
			}
			if item.Product == nil || item.Product.Stock <= 0 {
				return errOutOfStock
			}

			var cartItem models.CartItem
			err := tx.Where("user_id = ? AND product_id = ?", userID, item.ProductID).First(&cartItem).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&models.CartItem{
					UserID:    userID,
					ProductID: item.ProductID,
					Quantity:  1,
					AddedAt:   time.Now(),
				}).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else {
				cartItem.Quantity++
				if err := tx.Save(&cartItem).Error; err != nil {
					return err
				}
			}

			return tx.Delete(&item).Error
		})

		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Moved to cart"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
		case errors.Is(err, errOutOfStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is out of stock"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move item"})
		}
	}
}

var errOutOfStock = errors.New("product is out of stock")
