package admincontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

var ErrDuplicateCategory = errors.New("category name already exists")

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateCategory adds a category; names are unique.
func CreateCategory(db *gorm.DB, name, description string) (*models.Category, error) {
	var count int64
	if err := db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateCategory
	}

	category := models.Category{Name: name, Description: description}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category; the new name must not collide with
// another category.
func UpdateCategory(db *gorm.DB, id uint, name, description string) (*models.Category, error) {
	var count int64
	if err := db.Model(&models.Category{}).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateCategory
	}

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = description
	if err := db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GET /admin/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("Products").Order("name ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /admin/categories
func CreateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, err := CreateCategory(db, req.Name, req.Description)
		if err != nil {
			if errors.Is(err, ErrDuplicateCategory) {
				c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /admin/categories/:id
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		category, err := UpdateCategory(db, uint(id), req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateCategory):
				c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			}
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&models.Category{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
