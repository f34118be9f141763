package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LAES18/proyecto-automatas/config"
	"github.com/LAES18/proyecto-automatas/store"
)

// GetPlantTypes returns the predefined plant catalog.
func GetPlantTypes(c *gin.Context) {
	plants, err := store.ListPlantTypes(config.DB)
	if err != nil {
		log.Println("plant types:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener plantas"})
		return
	}
	c.JSON(http.StatusOK, plants)
}
