package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	collaboratorcontroller "github.com/staicu8/OnlineShop/controllers/collaborator"
	"github.com/staicu8/OnlineShop/middleware"
	"github.com/staicu8/OnlineShop/models"
)

// SetupCollaboratorRoutes registers the collaborator back office. Products
// created here always start pending; edits send them back to review.
func SetupCollaboratorRoutes(r *gin.Engine, db *gorm.DB) {
	collabGroup := r.Group("/collaborator")
	collabGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleCollaborator))
	{
		collabGroup.GET("/dashboard", collaboratorcontroller.Dashboard(db))
		collabGroup.GET("/sales", collaboratorcontroller.MySales(db))

		productGroup := collabGroup.Group("/products")
		{
			productGroup.GET("", collaboratorcontroller.MyProducts(db))
			productGroup.POST("", collaboratorcontroller.CreateProduct(db))
			productGroup.PUT("/:id", collaboratorcontroller.UpdateProduct(db))
			productGroup.DELETE("/:id", collaboratorcontroller.DeleteProduct(db))

			productGroup.GET("/:id/faqs", collaboratorcontroller.GetFAQs(db))
			productGroup.POST("/:id/faqs", collaboratorcontroller.AddFAQ(db))
			productGroup.DELETE("/:id/faqs/:faq_id", collaboratorcontroller.DeleteFAQ(db))
		}
	}
}
