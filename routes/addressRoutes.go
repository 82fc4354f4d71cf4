package routes

import (
	"github.com/Dannybanksrocks/agriconnect-api/controllers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AddressRoutes(server *gin.Engine) {
	addresses := server.Group("/addresses", middlewares.RequireAuth())
	{
		addresses.POST("", controllers.AddAddress)
		addresses.GET("", controllers.GetAddresses)
		addresses.PATCH("/:id/default", controllers.SetDefaultAddress)
		addresses.DELETE("/:id", controllers.RemoveAddress)
	}
}
