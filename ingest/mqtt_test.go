package ingest

import (
	"testing"
	"time"
)

func TestDecodeReading(t *testing.T) {
	payload := []byte(`{"device_id":"esp32s3_01","timestamp":"2025-06-01 12:00:00","soil_percent":28.5,"temperature_c":23.1,"humidity_percent":61,"pump_on":true}`)

	reading, err := DecodeReading(payload)
	if err != nil {
		t.Fatalf("DecodeReading() error = %v", err)
	}
	if reading.DeviceID != "esp32s3_01" {
		t.Errorf("device ID = %q", reading.DeviceID)
	}
	if !reading.PumpOn || reading.SoilPercent != 28.5 {
		t.Errorf("reading = %+v", reading)
	}
	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if !reading.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", reading.Timestamp, want)
	}
}

func TestDecodeReading_Malformed(t *testing.T) {
	for _, payload := range []string{"", "not json", "[]", `{"soil_percent":10}`} {
		if _, err := DecodeReading([]byte(payload)); err == nil {
			t.Errorf("DecodeReading(%q) should fail", payload)
		}
	}
}

func TestDecodeReading_BadTimestampFallsBack(t *testing.T) {
	before := time.Now()
	reading, err := DecodeReading([]byte(`{"device_id":"d1","timestamp":"yesterday-ish"}`))
	if err != nil {
		t.Fatalf("DecodeReading() error = %v", err)
	}
	if reading.Timestamp.Before(before) {
		t.Errorf("unparseable timestamp should fall back to server time, got %v", reading.Timestamp)
	}
}
