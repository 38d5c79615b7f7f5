package collaboratorcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/middleware"
	"github.com/staicu8/OnlineShop/models"
)

type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// ownProduct verifies the product belongs to the caller.
func ownProduct(db *gorm.DB, userID, productID string) (*models.Product, error) {
	var product models.Product
	err := db.Where("id = ? AND created_by_user_id = ?", productID, userID).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GET /collaborator/products/:id/faqs
func GetFAQs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if _, err := ownProduct(db, userID, c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var faqs []models.FAQ
		if err := db.Where("product_id = ?", c.Param("id")).Find(&faqs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQs"})
			return
		}
		c.JSON(http.StatusOK, faqs)
	}
}

// POST /collaborator/products/:id/faqs
func AddFAQ(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		product, err := ownProduct(db, userID, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req FAQRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		faq := models.FAQ{
			ProductID: product.ID,
			Question:  req.Question,
			Answer:    req.Answer,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&faq).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add FAQ"})
			return
		}
		c.JSON(http.StatusCreated, faq)
	}
}

// DELETE /collaborator/products/:id/faqs/:faq_id
func DeleteFAQ(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if _, err := ownProduct(db, userID, c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		res := db.Where("id = ? AND product_id = ?", c.Param("faq_id"), c.Param("id")).Delete(&models.FAQ{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete FAQ"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted"})
	}
}
