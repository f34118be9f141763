package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LAES18/proyecto-automatas/models"
)

// Thresholds served when nobody has configured a device yet. Devices cannot
// handle auth failures or retries, so this endpoint never returns an error
// shape to them.
const (
	DefaultMinSoil      = 40
	DefaultWateringTime = 3
)

// GetDeviceParameters resolves the configuration a polling device should
// apply. Devices carry no auth context, so when several users have configured
// the same device identifier the most recently updated row wins.
func GetDeviceParameters(db *gorm.DB, deviceID string) (models.DeviceConfig, error) {
	var param models.DeviceParameter
	err := db.Where("device_id = ?", deviceID).Order("updated_at DESC").First(&param).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DeviceConfig{MinSoil: DefaultMinSoil, WateringTime: DefaultWateringTime}, nil
	}
	if err != nil {
		return models.DeviceConfig{}, err
	}
	return models.DeviceConfig{MinSoil: param.MinSoil, WateringTime: param.WateringTime}, nil
}

// UpsertParameters writes a user's thresholds for one device as a single
// atomic statement keyed on the (user_id, device_id) unique index, so
// concurrent calls for the same pair cannot insert duplicate rows.
func UpsertParameters(db *gorm.DB, userID uint, req models.UpdateParametersRequest) error {
	param := models.DeviceParameter{
		UserID:       userID,
		DeviceID:     req.DeviceID,
		MinSoil:      *req.MinSoil,
		WateringTime: *req.WateringTime,
		TipoPlantaID: req.TipoPlantaID,
		UpdatedAt:    time.Now(),
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"min_soil", "watering_time", "tipo_planta_id", "updated_at",
		}),
	}).Create(&param).Error
}

// GetUserParameters returns the caller's own parameter row. A user managing
// several devices gets an arbitrary one; no device filter is applied.
func GetUserParameters(db *gorm.DB, userID uint) (*models.DeviceParameter, error) {
	var param models.DeviceParameter
	if err := db.Where("user_id = ?", userID).First(&param).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &param, nil
}

// OwnerIDsForDevice lists the users who hold parameter rows for a device,
// for scoping alerts to the people who configured it.
func OwnerIDsForDevice(db *gorm.DB, deviceID string) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.DeviceParameter{}).
		Where("device_id = ?", deviceID).Pluck("user_id", &ids).Error
	return ids, err
}

// PlantTypeForDevice returns the plant type most recently configured for a
// device, following the same cross-user recency rule as GetDeviceParameters.
func PlantTypeForDevice(db *gorm.DB, deviceID string) (*models.PlantType, error) {
	var param models.DeviceParameter
	err := db.Where("device_id = ? AND tipo_planta_id IS NOT NULL", deviceID).
		Order("updated_at DESC").First(&param).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var plant models.PlantType
	if err := db.First(&plant, *param.TipoPlantaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plant, nil
}
