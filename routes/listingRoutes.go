package routes

import (
	"github.com/Dannybanksrocks/agriconnect-api/controllers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ListingRoutes(server *gin.Engine) {
	server.GET("/listings", controllers.GetListings)
	server.GET("/listings/:id", controllers.GetListing)
	server.GET("/counties", controllers.GetCounties)

	farmer := server.Group("/", middlewares.RequireAuth(), middlewares.RequireFarmer())
	{
		farmer.POST("/listings", controllers.CreateListing)
		farmer.POST("/listing-images", controllers.UploadListingImages)
		farmer.PATCH("/listings/:id/status", controllers.UpdateListingStatus)
	}
}
