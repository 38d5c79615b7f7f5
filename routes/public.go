package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/staicu8/OnlineShop/controllers/product"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
// Only approved products are ever visible here.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/home", productcontroller.GetHomeProducts(db))
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.POST("/products/:id/ask", productcontroller.AskAssistant(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
}
