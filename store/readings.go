package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/LAES18/proyecto-automatas/models"
)

// Defaults for history queries that omit their filters.
const (
	DefaultDeviceID     = "esp32s3_01"
	DefaultReadingLimit = 50
)

// InsertReading appends one telemetry sample. No range validation, no
// deduplication.
func InsertReading(db *gorm.DB, reading *models.SensorReading) error {
	return db.Create(reading).Error
}

// ListReadings returns the newest readings for a device, newest first.
func ListReadings(db *gorm.DB, deviceID string, limit int) ([]models.SensorReading, error) {
	if deviceID == "" {
		deviceID = DefaultDeviceID
	}
	if limit <= 0 {
		limit = DefaultReadingLimit
	}
	readings := make([]models.SensorReading, 0)
	err := db.Where("device_id = ?", deviceID).
		Order("timestamp DESC").Limit(limit).Find(&readings).Error
	return readings, err
}

// LatestReading returns the most recent reading for a device.
func LatestReading(db *gorm.DB, deviceID string) (*models.SensorReading, error) {
	if deviceID == "" {
		deviceID = DefaultDeviceID
	}
	var reading models.SensorReading
	err := db.Where("device_id = ?", deviceID).Order("timestamp DESC").First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}
