package collaboratorcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/middleware"
	"github.com/staicu8/OnlineShop/models"
	"github.com/staicu8/OnlineShop/uploads"
)

// productForm reads the multipart product fields shared by create and edit.
func productForm(c *gin.Context) (title, description string, price float64, stock int, categoryID uint, err error) {
	title = c.PostForm("title")
	description = c.PostForm("description")
	priceStr := c.PostForm("price")
	stockStr := c.PostForm("stock")
	categoryStr := c.PostForm("category_id")

	if title == "" || description == "" || priceStr == "" || categoryStr == "" {
		err = errors.New("title, description, price and category_id are required")
		return
	}

	price, err = strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		err = errors.New("price must be a positive number")
		return
	}

	if stockStr != "" {
		stock, err = strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			err = errors.New("stock must be a non-negative integer")
			return
		}
	}

	cid, parseErr := strconv.ParseUint(categoryStr, 10, 64)
	if parseErr != nil {
		err = errors.New("invalid category_id")
		return
	}
	categoryID = uint(cid)
	return
}

// GET /collaborator/products — own products in every state, rejection reasons included.
func MyProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var products []models.Product
		if err := db.
			Preload("Category").
			Where("created_by_user_id = ?", userID).
			Order("id DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /collaborator/products — collaborator submissions start pending.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		title, description, price, stock, categoryID, err := productForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		imagePath, err := uploads.SaveProductImage(c, "image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Title:           title,
			Description:     description,
			Price:           price,
			Stock:           stock,
			ImagePath:       imagePath,
			Status:          models.ProductStatusPending,
			CategoryID:      categoryID,
			CreatedByUserID: userID,
			CreatedAt:       time.Now(),
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /collaborator/products/:id
// Any edit puts the product back in review, whatever state it was in.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		if product.CreatedByUserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your product"})
			return
		}

		title, description, price, stock, categoryID, err := productForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		if _, fileErr := c.FormFile("image"); fileErr == nil {
			imagePath, err := uploads.SaveProductImage(c, "image")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.ImagePath = imagePath
		}

		product.Title = title
		product.Description = description
		product.Price = price
		product.Stock = stock
		product.CategoryID = categoryID
		product.Status = models.ProductStatusPending
		product.RejectionReason = ""
		product.UpdatedAt = time.Now()

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /collaborator/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		if product.CreatedByUserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your product"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
