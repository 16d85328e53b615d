package initializers

import (
	"log"

	"github.com/kinmelhub/kinmel-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.StatusHistory{},
		&models.DiscountCode{},
		&models.ProductDiscountLink{},
		&models.Notification{},
	)
	log.Println("Database synced successfully.")
}
