package main

import (
	"log"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/cache"
	"github.com/Dannybanksrocks/agriconnect-api/controllers"
	"github.com/Dannybanksrocks/agriconnect-api/initializers"
	"github.com/Dannybanksrocks/agriconnect-api/payments"
	"github.com/Dannybanksrocks/agriconnect-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.SeedUsers()
	initializers.ConnectToRedis()
}

func main() {
	if initializers.Redis != nil {
		controllers.CatalogCache = cache.New(initializers.Redis, cache.DefaultTTL)
	}

	if gateway, err := payments.NewMomoGateway(); err == nil {
		controllers.PaymentGateway = gateway
		log.Println("Using hosted mobile-money gateway.")
	} else {
		log.Println("Using simulated payment gateway.")
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://www.agriconnect.lr"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ListingRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.AddressRoutes(server)
	routes.MarketRoutes(server)
	server.Run()
}
