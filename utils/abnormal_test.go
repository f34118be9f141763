package utils

import (
	"testing"

	"github.com/LAES18/proyecto-automatas/models"
)

var fern = models.PlantType{
	Nombre: "Helechos", MinSoil: 60, MaxSoil: 80,
	MinHumidity: 60, MaxHumidity: 80,
	MinTemp: 15.0, MaxTemp: 24.0, WateringTime: 5,
}

func TestOutOfRange(t *testing.T) {
	cases := []struct {
		name    string
		reading models.SensorReading
		want    bool
		measure string
	}{
		{"all within range", models.SensorReading{SoilPercent: 70, HumidityPercent: 70, TemperatureC: 20}, false, ""},
		{"soil too dry", models.SensorReading{SoilPercent: 40, HumidityPercent: 70, TemperatureC: 20}, true, "Soil Moisture"},
		{"soil too wet", models.SensorReading{SoilPercent: 95, HumidityPercent: 70, TemperatureC: 20}, true, "Soil Moisture"},
		{"humidity low", models.SensorReading{SoilPercent: 70, HumidityPercent: 30, TemperatureC: 20}, true, "Humidity"},
		{"too hot", models.SensorReading{SoilPercent: 70, HumidityPercent: 70, TemperatureC: 30}, true, "Temperature"},
		{"boundary values", models.SensorReading{SoilPercent: 60, HumidityPercent: 80, TemperatureC: 24}, false, ""},
	}
	for _, tc := range cases {
		got, measure := OutOfRange(tc.reading, fern)
		if got != tc.want || measure != tc.measure {
			t.Errorf("%s: OutOfRange() = (%v, %q), want (%v, %q)", tc.name, got, measure, tc.want, tc.measure)
		}
	}
}
