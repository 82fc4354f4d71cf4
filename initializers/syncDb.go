package initializers

import (
	"log"

	"github.com/Dannybanksrocks/agriconnect-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.ListingImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.DeliveryAddress{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusEntry{},
		&models.ScheduledOrder{},
		&models.SavedItem{},
	)
	log.Println("Database synced successfully.")
}
