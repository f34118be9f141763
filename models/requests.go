package models

import "time"

// RegisterRequest is the expected JSON payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the expected JSON payload for user login. Fields are
// checked in the handler so each failure gets its own message.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateParametersRequest is the expected JSON payload for PUT /api/parametros.
// The thresholds are pointers so that an explicit 0 (never water) is accepted
// while a missing field is still rejected.
type UpdateParametersRequest struct {
	DeviceID     string `json:"device_id" binding:"required"`
	MinSoil      *int   `json:"min_soil" binding:"required,gte=0,lte=100"`
	WateringTime *int   `json:"watering_time" binding:"required,gte=0"`
	TipoPlantaID *uint  `json:"tipo_planta_id"`
}

// SensorReadingRequest is the payload devices report, over HTTP or MQTT.
type SensorReadingRequest struct {
	DeviceID        string  `json:"device_id" binding:"required"`
	Timestamp       string  `json:"timestamp"`
	SoilPercent     float32 `json:"soil_percent"`
	TemperatureC    float32 `json:"temperature_c"`
	HumidityPercent float32 `json:"humidity_percent"`
	PumpOn          bool    `json:"pump_on"`
}

// Reading converts the request into a storable row. Device clocks are not
// trusted to be well formatted: timestamps arrive as RFC3339 or
// "2006-01-02 15:04:05", anything else falls back to server time.
func (r SensorReadingRequest) Reading() SensorReading {
	ts := time.Now()
	if r.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, r.Timestamp); err == nil {
			ts = t
		} else if t, err := time.Parse("2006-01-02 15:04:05", r.Timestamp); err == nil {
			ts = t
		}
	}
	return SensorReading{
		DeviceID:        r.DeviceID,
		Timestamp:       ts,
		SoilPercent:     r.SoilPercent,
		TemperatureC:    r.TemperatureC,
		HumidityPercent: r.HumidityPercent,
		PumpOn:          r.PumpOn,
	}
}
