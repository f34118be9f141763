package utils

import "github.com/LAES18/proyecto-automatas/models"

// OutOfRange reports whether a reading falls outside the plant type's
// recommended ranges, and which measurement violated them.
func OutOfRange(r models.SensorReading, p models.PlantType) (bool, string) {
	switch {
	case r.SoilPercent < float32(p.MinSoil) || r.SoilPercent > float32(p.MaxSoil):
		return true, "Soil Moisture"
	case r.HumidityPercent < float32(p.MinHumidity) || r.HumidityPercent > float32(p.MaxHumidity):
		return true, "Humidity"
	case r.TemperatureC < p.MinTemp || r.TemperatureC > p.MaxTemp:
		return true, "Temperature"
	}
	return false, ""
}
