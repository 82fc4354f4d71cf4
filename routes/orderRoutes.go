package routes

import (
	"github.com/Dannybanksrocks/agriconnect-api/controllers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	authed := server.Group("/", middlewares.RequireAuth())
	{
		authed.POST("/checkout", controllers.Checkout)
		authed.GET("/orders", controllers.GetMyOrders)
		authed.GET("/orders/:orderId", controllers.GetOrderById)
		authed.PATCH("/orders/:orderId/cancel", controllers.CancelOrder)

		authed.POST("/scheduled-orders", controllers.CreateScheduledOrder)
		authed.GET("/scheduled-orders", controllers.GetScheduledOrders)
		authed.PATCH("/scheduled-orders/:id/cancel", controllers.CancelScheduledOrder)
	}

	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/undelivered", controllers.GetUndeliveredOrders)
		admin.PATCH("/orders/:orderId/status", controllers.UpdateOrderStatus)
	}
}
