package store

import (
	"gorm.io/gorm"

	"github.com/LAES18/proyecto-automatas/models"
)

// defaultPlantTypes is the predefined catalog of irrigation archetypes.
var defaultPlantTypes = []models.PlantType{
	{Nombre: "Suculentas", MinSoil: 20, MaxSoil: 40, MinHumidity: 30, MaxHumidity: 50, MinTemp: 18.0, MaxTemp: 30.0, WateringTime: 2, Descripcion: "Requieren poco riego, suelo bien drenado"},
	{Nombre: "Helechos", MinSoil: 60, MaxSoil: 80, MinHumidity: 60, MaxHumidity: 80, MinTemp: 15.0, MaxTemp: 24.0, WateringTime: 5, Descripcion: "Necesitan alta humedad y suelo húmedo"},
	{Nombre: "Cactáceas", MinSoil: 15, MaxSoil: 30, MinHumidity: 20, MaxHumidity: 40, MinTemp: 20.0, MaxTemp: 35.0, WateringTime: 2, Descripcion: "Muy resistentes a la sequía"},
	{Nombre: "Plantas Tropicales", MinSoil: 50, MaxSoil: 70, MinHumidity: 60, MaxHumidity: 80, MinTemp: 20.0, MaxTemp: 28.0, WateringTime: 4, Descripcion: "Requieren calor y humedad constante"},
	{Nombre: "Aromáticas (Albahaca, Menta)", MinSoil: 40, MaxSoil: 60, MinHumidity: 50, MaxHumidity: 70, MinTemp: 18.0, MaxTemp: 25.0, WateringTime: 3, Descripcion: "Necesitan riego regular"},
	{Nombre: "Tomates", MinSoil: 50, MaxSoil: 70, MinHumidity: 50, MaxHumidity: 70, MinTemp: 18.0, MaxTemp: 27.0, WateringTime: 4, Descripcion: "Riego frecuente durante crecimiento"},
	{Nombre: "Pimientos", MinSoil: 45, MaxSoil: 65, MinHumidity: 50, MaxHumidity: 70, MinTemp: 20.0, MaxTemp: 28.0, WateringTime: 3, Descripcion: "Riego moderado constante"},
	{Nombre: "Flores Ornamentales", MinSoil: 40, MaxSoil: 60, MinHumidity: 50, MaxHumidity: 70, MinTemp: 15.0, MaxTemp: 25.0, WateringTime: 3, Descripcion: "Riego moderado regular"},
}

// SeedPlantTypes inserts the predefined catalog when the table is empty.
// Calling it again is a no-op.
func SeedPlantTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PlantType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	plants := make([]models.PlantType, len(defaultPlantTypes))
	copy(plants, defaultPlantTypes)
	return db.Create(&plants).Error
}

// ListPlantTypes returns the full catalog.
func ListPlantTypes(db *gorm.DB) ([]models.PlantType, error) {
	plants := make([]models.PlantType, 0)
	err := db.Find(&plants).Error
	return plants, err
}
