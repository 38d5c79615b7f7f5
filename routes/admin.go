package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	admincontroller "github.com/staicu8/OnlineShop/controllers/admin"
	ordercontroller "github.com/staicu8/OnlineShop/controllers/order"
	"github.com/staicu8/OnlineShop/middleware"
	"github.com/staicu8/OnlineShop/models"
)

// SetupAdminRoutes registers the admin back office: moderation, catalog,
// categories, users, orders, reviews and exports.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/dashboard", admincontroller.Dashboard(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", admincontroller.GetAllProducts(db))
			productAdmin.POST("", admincontroller.CreateProduct(db))
			productAdmin.PUT("/:id", admincontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", admincontroller.DeleteProduct(db))
			productAdmin.POST("/:id/approve", admincontroller.ApproveProductHandler(db))
			productAdmin.POST("/:id/reject", admincontroller.RejectProductHandler(db))
			productAdmin.GET("/export-excel", admincontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", admincontroller.GetCategories(db))
			categoryAdmin.POST("", admincontroller.CreateCategoryHandler(db))
			categoryAdmin.PUT("/:id", admincontroller.UpdateCategoryHandler(db))
			categoryAdmin.DELETE("/:id", admincontroller.DeleteCategory(db))
		}

		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", admincontroller.GetAllUsers(db))
			userAdmin.PUT("/:id/role", admincontroller.ChangeUserRoleHandler(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", ordercontroller.GetAllOrders(db))
			orderAdmin.GET("/export-excel", admincontroller.ExportOrdersToExcel(db))
			orderAdmin.GET("/:id", ordercontroller.GetOrderByID(db))
			orderAdmin.PUT("/:id/status", ordercontroller.UpdateOrderStatus(db))
			orderAdmin.GET("/feed", ordercontroller.OrderFeedHandler)
		}

		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.GET("", admincontroller.GetAllReviews(db))
			reviewAdmin.DELETE("/:id", admincontroller.DeleteReview(db))
		}
	}
}
