package routes

import (
	"github.com/Dannybanksrocks/agriconnect-api/controllers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddCartItem)
		cart.PATCH("/:listingId", controllers.UpdateCartItem)
		cart.DELETE("/:listingId", controllers.RemoveCartItem)
		cart.DELETE("", controllers.ClearCart)
	}

	saved := server.Group("/saved-items", middlewares.RequireAuth())
	{
		saved.POST("", controllers.SaveItem)
		saved.GET("", controllers.GetSavedItems)
		saved.DELETE("/:id", controllers.RemoveSavedItem)
	}
}
