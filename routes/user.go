package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartcontroller "github.com/staicu8/OnlineShop/controllers/cart"
	ordercontroller "github.com/staicu8/OnlineShop/controllers/order"
	reviewcontroller "github.com/staicu8/OnlineShop/controllers/review"
	usercontroller "github.com/staicu8/OnlineShop/controllers/user"
	wishlistcontroller "github.com/staicu8/OnlineShop/controllers/wishlist"
	"github.com/staicu8/OnlineShop/middleware"
)

// SetupUserRoutes registers the JWT-protected endpoints any signed-in user
// may call: profile, cart, checkout, orders, reviews, wishlist.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/profile", usercontroller.GetProfile(db))
		userGroup.PUT("/profile", usercontroller.UpdateProfile(db))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartcontroller.GetCart(db))
			cartGroup.POST("", cartcontroller.AddCartItem(db))
			cartGroup.PUT("/:product_id", cartcontroller.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartcontroller.DeleteCartItem(db))
			cartGroup.DELETE("", cartcontroller.ClearCart(db))
			cartGroup.POST("/checkout", ordercontroller.CheckoutHandler(db))
		}

		userGroup.GET("/orders", ordercontroller.GetUserOrders(db))
		userGroup.GET("/orders/:id", ordercontroller.GetUserOrderByID(db))

		userGroup.POST("/products/:id/reviews", reviewcontroller.CreateReviewHandler(db))
		userGroup.PUT("/reviews/:id", reviewcontroller.UpdateReviewHandler(db))
		userGroup.DELETE("/reviews/:id", reviewcontroller.DeleteReviewHandler(db))

		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistcontroller.GetWishlist(db))
			wishlistGroup.POST("", wishlistcontroller.AddWishlistItem(db))
			wishlistGroup.DELETE("/:product_id", wishlistcontroller.RemoveWishlistItem(db))
			wishlistGroup.POST("/:product_id/move-to-cart", wishlistcontroller.MoveToCart(db))
		}
	}
}
