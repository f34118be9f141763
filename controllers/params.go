package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LAES18/proyecto-automatas/config"
	"github.com/LAES18/proyecto-automatas/models"
	"github.com/LAES18/proyecto-automatas/store"
)

// GetDeviceConfig serves thresholds to a polling device. Unauthenticated:
// the device always gets a usable configuration, defaults included.
func GetDeviceConfig(c *gin.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device_id requerido"})
		return
	}

	cfg, err := store.GetDeviceParameters(config.DB, deviceID)
	if err != nil {
		log.Println("device parameters:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener parámetros"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateParameters upserts the caller's thresholds for one device.
func UpdateParameters(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return
	}

	var req models.UpdateParametersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	if err := store.UpsertParameters(config.DB, userID, req); err != nil {
		log.Println("upsert parameters:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar parámetros"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Parámetros actualizados"})
}

// GetUserParameters returns the caller's own parameter row, or null.
func GetUserParameters(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return
	}

	param, err := store.GetUserParameters(config.DB, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Println("user parameters:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener parámetros"})
		return
	}
	c.JSON(http.StatusOK, param)
}
