package models

import "time"

// SensorReading is one telemetry sample reported by a device. DeviceID is a
// bare string correlated by convention; there is no foreign key to users or
// parameters.
type SensorReading struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	DeviceID        string    `json:"device_id" gorm:"size:50;not null;index:idx_device_timestamp"`
	Timestamp       time.Time `json:"timestamp" gorm:"index:idx_device_timestamp"`
	SoilPercent     float32   `json:"soil_percent"`
	TemperatureC    float32   `json:"temperature_c"`
	HumidityPercent float32   `json:"humidity_percent"`
	PumpOn          bool      `json:"pump_on"`
	CreatedAt       time.Time `json:"created_at"`
}
