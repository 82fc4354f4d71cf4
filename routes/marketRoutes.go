package routes

import (
	"github.com/Dannybanksrocks/agriconnect-api/controllers"
	"github.com/gin-gonic/gin"
)

func MarketRoutes(server *gin.Engine) {
	market := server.Group("/market")
	{
		market.GET("/prices", controllers.GetMarketPrices)
		market.GET("/weather/:county", controllers.GetWeatherForecast)
		market.GET("/tips", controllers.GetTips)
		market.GET("/alerts", controllers.GetAlerts)
	}
}
