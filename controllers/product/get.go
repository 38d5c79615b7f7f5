package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

// GetProductByID returns one approved product with its category, reviews
// (including reviewer names) and FAQs. Non-approved products are a 404 for
// the public, whatever their actual state.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		err := db.
			Preload("Category").
			Preload("Reviews.User").
			Preload("FAQs").
			Where("id = ? AND status = ?", id, models.ProductStatusApproved).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
