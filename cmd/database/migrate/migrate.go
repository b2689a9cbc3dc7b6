package migration

import (
	"Go-Pantry-Tracker/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		log.Errorf("Error creating uuid-ossp extension: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Errorf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.KVEntry{}); err != nil {
		log.Errorf("Error migrating storage partitions: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
