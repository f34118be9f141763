package models

// PlantType is a named irrigation archetype with recommended environmental
// ranges. Seeded once at startup, read-only afterwards.
type PlantType struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Nombre       string  `json:"nombre" gorm:"size:100;not null"`
	MinSoil      int     `json:"min_soil" gorm:"not null"`
	MaxSoil      int     `json:"max_soil" gorm:"not null"`
	MinHumidity  int     `json:"min_humidity" gorm:"not null"`
	MaxHumidity  int     `json:"max_humidity" gorm:"not null"`
	MinTemp      float32 `json:"min_temp" gorm:"not null"`
	MaxTemp      float32 `json:"max_temp" gorm:"not null"`
	WateringTime int     `json:"watering_time" gorm:"not null"`
	Descripcion  string  `json:"descripcion"`
}
