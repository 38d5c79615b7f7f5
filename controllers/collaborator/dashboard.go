package collaboratorcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/middleware"
	"github.com/staicu8/OnlineShop/models"
)

// ownOrders loads the distinct orders containing any of the collaborator's products.
func ownOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var productIDs []uint
	if err := db.Model(&models.Product{}).
		Where("created_by_user_id = ?", userID).
		Pluck("id", &productIDs).Error; err != nil {
		return nil, err
	}
	if len(productIDs) == 0 {
		return nil, nil
	}

	var orderIDs []uint
	if err := db.Model(&models.OrderItem{}).
		Distinct("order_id").
		Where("product_id IN ?", productIDs).
		Pluck("order_id", &orderIDs).Error; err != nil {
		return nil, err
	}
	if len(orderIDs) == 0 {
		return nil, nil
	}

	var orders []models.Order
	err := db.Preload("User").Preload("Items").
		Where("id IN ?", orderIDs).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// GET /collaborator/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var productCount int64
		if err := db.Model(&models.Product{}).
			Where("created_by_user_id = ?", userID).
			Count(&productCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		orders, err := ownOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var personalSales float64
		for _, o := range orders {
			personalSales += o.TotalAmount
		}

		c.JSON(http.StatusOK, gin.H{
			"personal_sales": personalSales,
			"my_products":    productCount,
			"my_orders":      len(orders),
		})
	}
}

// GET /collaborator/sales — orders touching this collaborator's products.
func MySales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orders, err := ownOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}
