package routes

import (
	"github.com/battariah/storefront-api/controllers"
	"github.com/battariah/storefront-api/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
		api.POST("/logout", controllers.Logout)

		// Public storefront surface.
		api.GET("/products", controllers.GetProductsPublic)
		api.GET("/products/:id", controllers.GetProductByID)
		api.GET("/products/:id/reviews", controllers.GetReviewsByProduct)
		api.GET("/categories", controllers.GetCategories)
		api.GET("/brands", controllers.GetBrands)
		api.GET("/banners", controllers.GetBanners)
		api.GET("/settings", controllers.GetSettings)

		// Guest cart, identified by guest_id.
		guest := api.Group("/guest")
		{
			guest.POST("/cart", controllers.AddToGuestCart)
			guest.GET("/cart", controllers.GetGuestCart)
			guest.PUT("/cart/:productId", controllers.UpdateGuestCart)
			guest.DELETE("/cart/:productId", controllers.RemoveFromGuestCart)
			guest.DELETE("/cart", controllers.ClearGuestCart)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.GET("/products", controllers.GetProductsAdmin)
				admin.POST("/products", controllers.CreateProduct)
				admin.PUT("/products/:id", controllers.UpdateProduct)
				admin.DELETE("/products/:id", controllers.DeleteProduct)

				admin.GET("/orders", controllers.GetOrdersAdmin)
				admin.GET("/orders/:id", controllers.GetOrderByIDAdmin)
				admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
				admin.PUT("/orders/:id/cancel", controllers.CancelOrderAdmin)

				admin.POST("/categories", controllers.CreateCategory)
				admin.PUT("/categories/:id", controllers.UpdateCategory)
				admin.DELETE("/categories/:id", controllers.DeleteCategory)

				admin.POST("/brands", controllers.CreateBrand)
				admin.PUT("/brands/:id", controllers.UpdateBrand)
				admin.DELETE("/brands/:id", controllers.DeleteBrand)

				admin.GET("/banners", controllers.GetBannersAdmin)
				admin.POST("/banners", controllers.CreateBanner)
				admin.PUT("/banners/:id", controllers.UpdateBanner)
				admin.DELETE("/banners/:id", controllers.DeleteBanner)

				admin.GET("/users", controllers.GetUsersAdmin)
				admin.PUT("/users/:id", controllers.UpdateUserAdmin)
				admin.DELETE("/users/:id", controllers.DeleteUserAdmin)

				admin.DELETE("/reviews/:id", controllers.DeleteReview)

				admin.POST("/notifications", controllers.CreateNotification)
				admin.POST("/notifications/broadcast", controllers.BroadcastNotification)

				admin.GET("/messages", controllers.GetMessagesAdmin)
				admin.PUT("/messages/:id/read", controllers.MarkMessageRead)
				admin.PUT("/messages/:id/resolve", controllers.ResolveMessage)
				admin.POST("/messages/:id/reply", controllers.ReplyToMessage)
				admin.GET("/messages/:id", controllers.GetMessageThread)

				admin.PUT("/settings", controllers.UpdateSettings)
			}

			user := protected.Group("/user")
			{
				user.GET("/me", controllers.Me)

				user.POST("/cart", controllers.AddToCart)
				user.GET("/cart", controllers.GetCart)
				user.PUT("/cart/:productId", controllers.UpdateCart)
				user.DELETE("/cart/:productId", controllers.RemoveFromCart)
				user.DELETE("/cart", controllers.ClearCart)

				user.POST("/checkout", controllers.Checkout)
				user.GET("/orders", controllers.GetOrders)
				user.GET("/orders/:id", controllers.GetOrderByID)
				user.PUT("/orders/:id/cancel", controllers.CancelOrder)

				user.POST("/reviews", controllers.CreateReview)

				user.GET("/notifications", controllers.GetNotifications)
				user.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

				user.POST("/messages", controllers.CreateMessage)
				user.GET("/messages", controllers.GetMessages)
				user.GET("/messages/:id", controllers.GetMessageThread)
				user.POST("/messages/:id/reply", controllers.ReplyToMessage)
			}
		}
	}
}
