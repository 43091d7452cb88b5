package migration

import (
	"NutriSnap-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealEntry{}); err != nil {
		log.Fatalf("Error migrating meal entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WeightEntry{}); err != nil {
		log.Fatalf("Error migrating weight entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WaterEntry{}); err != nil {
		log.Fatalf("Error migrating water entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ExerciseEntry{}); err != nil {
		log.Fatalf("Error migrating exercise entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
