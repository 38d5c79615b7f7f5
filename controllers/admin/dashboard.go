package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

// GET /admin/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalSales float64
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalSales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var totalOrders, totalProducts, totalUsers int64
		db.Model(&models.Order{}).Count(&totalOrders)
		db.Model(&models.Product{}).Count(&totalProducts)
		db.Model(&models.User{}).Count(&totalUsers)

		var recentOrders []models.Order
		if err := db.Preload("User").Order("created_at DESC").Limit(5).Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var lowStock []models.Product
		if err := db.Where("stock <= ?", 10).Order("stock ASC").Limit(5).Find(&lowStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_sales":        totalSales,
			"total_orders":       totalOrders,
			"total_products":     totalProducts,
			"total_users":        totalUsers,
			"recent_orders":      recentOrders,
			"low_stock_products": lowStock,
		})
	}
}
