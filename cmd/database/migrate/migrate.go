package migration

import (
	"fmt"
	"log"

	"Care-Crumbs/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CartItem{}); err != nil {
		log.Fatalf("Error migrating cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonatedFood{}); err != nil {
		log.Fatalf("Error migrating donated food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PasswordReset{}); err != nil {
		log.Fatalf("Error migrating password reset database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
