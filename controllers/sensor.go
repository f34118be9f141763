package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LAES18/proyecto-automatas/config"
	"github.com/LAES18/proyecto-automatas/models"
	"github.com/LAES18/proyecto-automatas/store"
	"github.com/LAES18/proyecto-automatas/utils"
)

// ReceiveReading accepts a telemetry sample from a device. Unauthenticated;
// the sink is append-only.
func ReceiveReading(c *gin.Context) {
	var req models.SensorReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	reading := req.Reading()
	if err := store.InsertReading(config.DB, &reading); err != nil {
		log.Println("insert reading:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar datos"})
		return
	}

	NotifyReading(reading)
	c.JSON(http.StatusOK, gin.H{"message": "Datos recibidos correctamente"})
}

// NotifyReading pushes a stored reading to websocket clients and raises an
// alert when it falls outside the plant ranges configured for its device.
// Shared by the HTTP handler and the MQTT ingest bridge.
func NotifyReading(reading models.SensorReading) {
	BroadcastReading(reading)

	plant, err := store.PlantTypeForDevice(config.DB, reading.DeviceID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Println("plant type for device:", err)
		}
		return
	}
	if bad, what := utils.OutOfRange(reading, *plant); bad {
		owners, err := store.OwnerIDsForDevice(config.DB, reading.DeviceID)
		if err != nil {
			log.Println("device owners:", err)
			return
		}
		BroadcastAlert(reading, what, owners)
	}
}

// GetReadings returns recent readings for a device, newest first.
func GetReadings(c *gin.Context) {
	deviceID := c.Query("device_id")
	limit, _ := strconv.Atoi(c.Query("limit"))

	readings, err := store.ListReadings(config.DB, deviceID, limit)
	if err != nil {
		log.Println("list readings:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener lecturas"})
		return
	}
	c.JSON(http.StatusOK, readings)
}

// GetLatestReading returns the most recent reading for a device, or null.
func GetLatestReading(c *gin.Context) {
	reading, err := store.LatestReading(config.DB, c.Query("device_id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Println("latest reading:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener lectura"})
		return
	}
	c.JSON(http.StatusOK, reading)
}
