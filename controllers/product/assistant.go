package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
	"github.com/staicu8/OnlineShop/services/assistant"
)

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskAssistant answers a free-form question about an approved product using
// the external AI service. Failures degrade to a fixed fallback answer.
func AskAssistant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var req askRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
			return
		}

		var product models.Product
		if err := db.Select("id").
			Where("id = ? AND status = ?", id, models.ProductStatusApproved).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		answer := assistant.ProductAnswer(db, product.ID, req.Question)
		c.JSON(http.StatusOK, gin.H{"answer": answer})
	}
}
