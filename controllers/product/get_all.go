package productcontroller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

const pageSize = 9

// GetProducts lists approved products with search, category filter, sorting
// and pagination. Pending and rejected products never show up here.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		sortOrder := c.Query("sort")
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		query := db.Model(&models.Product{}).
			Preload("Category").
			Where("status = ?", models.ProductStatusApproved)

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", likePattern, likePattern)
		}

		if categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}

		switch sortOrder {
		case "price_asc":
			query = query.Order("price ASC")
		case "price_desc":
			query = query.Order("price DESC")
		case "rating_asc":
			query = query.Order("COALESCE(rating, 0) ASC")
		case "rating_desc":
			query = query.Order("COALESCE(rating, 0) DESC")
		case "name_asc":
			query = query.Order("title ASC")
		case "name_desc":
			query = query.Order("title DESC")
		default:
			query = query.Order("id DESC")
		}

		var totalItems int64
		if err := query.Count(&totalItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":    products,
			"page":        page,
			"total_pages": int(math.Ceil(float64(totalItems) / float64(pageSize))),
			"total_items": totalItems,
		})
	}
}

// GetHomeProducts returns the six newest approved products for the landing page.
func GetHomeProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Preload("Category").
			Where("status = ?", models.ProductStatusApproved).
			Order("id DESC").
			Limit(6).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetAllCategories returns all categories for the catalog filter.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
