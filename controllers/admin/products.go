package admincontroller

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

type RejectProductRequest struct {
	Reason string `json:"reason"`
}

// ApproveProduct moves a product into the public catalog. Works from pending
// and from rejected (an approve after a recall), clearing any old reason.
func ApproveProduct(db *gorm.DB, productID uint) error {
	res := db.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"status":           models.ProductStatusApproved,
			"rejection_reason": "",
			"updated_at":       time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RejectProduct pulls a product from (or keeps it out of) the catalog. The
// reason stays visible to the product's owner.
func RejectProduct(db *gorm.DB, productID uint, reason string) error {
	res := db.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"status":           models.ProductStatusRejected,
			"rejection_reason": reason,
			"updated_at":       time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GET /admin/products — every status, newest first.
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("id DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /admin/products — admin catalog entries skip moderation.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		title := c.PostForm("title")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		categoryStr := c.PostForm("category_id")
		if title == "" || description == "" || priceStr == "" || categoryStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, description, price and category_id are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive number"})
			return
		}

		stock := 0
		if stockStr != "" {
			stock, err = strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be a non-negative integer"})
				return
			}
		}

		cid, err := strconv.ParseUint(categoryStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		var category models.Category
		if err := db.First(&category, uint(cid)).Error; err != nil {
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
			Status:          models.ProductStatusApproved,
			CategoryID:      uint(cid),
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

// PUT /admin/products/:id — admin edits do not change moderation state.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		if v := c.PostForm("title"); v != "" {
			product.Title = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive number"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be a non-negative integer"})
				return
			}
			product.Stock = stock
		}
		if v := c.PostForm("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(cid)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = uint(cid)
		}
		if _, fileErr := c.FormFile("image"); fileErr == nil {
			imagePath, err := uploads.SaveProductImage(c, "image")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.ImagePath = imagePath
		}

		product.UpdatedAt = time.Now()
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&models.Product{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// POST /admin/products/:id/approve
func ApproveProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if err := ApproveProduct(db, uint(id)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product approved"})
	}
}

// POST /admin/products/:id/reject
func RejectProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var req RejectProductRequest
		_ = c.ShouldBindJSON(&req) // reason is optional

		if err := RejectProduct(db, uint(id), req.Reason); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product rejected"})
	}
}
