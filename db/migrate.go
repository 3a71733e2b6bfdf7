package db

import (
	"fmt"
	"log"

	"github.com/siraj-eng/ShifaaEcommerce/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Practitioner{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
