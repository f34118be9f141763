package store

import (
	"gorm.io/gorm"

	"github.com/LAES18/proyecto-automatas/models"
)

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PlantType{},
		&models.DeviceParameter{},
		&models.SensorReading{},
	)
}
