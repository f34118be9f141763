package store

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/LAES18/proyecto-automatas/models"
)

func insertTestReading(t *testing.T, db *gorm.DB, deviceID string, ts time.Time, soil float32) {
	t.Helper()
	reading := models.SensorReading{
		DeviceID:        deviceID,
		Timestamp:       ts,
		SoilPercent:     soil,
		TemperatureC:    22.5,
		HumidityPercent: 60,
	}
	if err := InsertReading(db, &reading); err != nil {
		t.Fatalf("InsertReading() error = %v", err)
	}
}

func TestListReadings_NewestFirst(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	insertTestReading(t, db, "esp32s3_01", base, 30)
	insertTestReading(t, db, "esp32s3_01", base.Add(2*time.Minute), 32)
	insertTestReading(t, db, "esp32s3_01", base.Add(time.Minute), 31)
	insertTestReading(t, db, "other", base.Add(3*time.Minute), 99)

	readings, err := ListReadings(db, "esp32s3_01", 10)
	if err != nil {
		t.Fatalf("ListReadings() error = %v", err)
	}
	if len(readings) != 3 {
		t.Fatalf("len(readings) = %d, want 3", len(readings))
	}
	if readings[0].SoilPercent != 32 {
		t.Errorf("first reading soil = %v, want the newest (32)", readings[0].SoilPercent)
	}
}

func TestListReadings_Defaults(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertTestReading(t, db, DefaultDeviceID, base, 30)

	// Empty device ID and non-positive limit fall back to the defaults.
	readings, err := ListReadings(db, "", 0)
	if err != nil {
		t.Fatalf("ListReadings() error = %v", err)
	}
	if len(readings) != 1 {
		t.Errorf("len(readings) = %d, want 1 for default device", len(readings))
	}
}

func TestListReadings_Limit(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		insertTestReading(t, db, "d1", base.Add(time.Duration(i)*time.Minute), float32(i))
	}

	readings, err := ListReadings(db, "d1", 2)
	if err != nil {
		t.Fatalf("ListReadings() error = %v", err)
	}
	if len(readings) != 2 {
		t.Errorf("len(readings) = %d, want limit of 2", len(readings))
	}
}

func TestLatestReading(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertTestReading(t, db, "d1", base, 30)
	insertTestReading(t, db, "d1", base.Add(time.Minute), 45)

	reading, err := LatestReading(db, "d1")
	if err != nil {
		t.Fatalf("LatestReading() error = %v", err)
	}
	if reading.SoilPercent != 45 {
		t.Errorf("latest soil = %v, want 45", reading.SoilPercent)
	}
}

func TestLatestReading_NotFound(t *testing.T) {
	db := testDB(t)

	if _, err := LatestReading(db, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LatestReading() error = %v, want ErrNotFound", err)
	}
}
