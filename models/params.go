package models

import "time"

// DeviceParameter holds one user's irrigation thresholds for one device.
// The composite unique index keeps at most one row per (user, device) pair;
// two different users may still configure the same device identifier.
type DeviceParameter struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_device"`
	DeviceID     string    `json:"device_id" gorm:"size:50;not null;uniqueIndex:idx_user_device"`
	MinSoil      int       `json:"min_soil" gorm:"not null"`
	WateringTime int       `json:"watering_time" gorm:"not null"`
	TipoPlantaID *uint     `json:"tipo_planta_id"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DeviceConfig is what a polling device receives: just the thresholds it
// needs to decide when and how long to water.
type DeviceConfig struct {
	MinSoil      int `json:"min_soil"`
	WateringTime int `json:"watering_time"`
}
