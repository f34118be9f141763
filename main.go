package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LAES18/proyecto-automatas/config"
	"github.com/LAES18/proyecto-automatas/controllers"
	"github.com/LAES18/proyecto-automatas/ingest"
	"github.com/LAES18/proyecto-automatas/middlewares"
	"github.com/LAES18/proyecto-automatas/store"
)

func main() {
	// Load environment variables
	godotenv.Load()
	cfg := config.Load()

	// Connect to PostgreSQL database
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	config.DB = db

	if err := store.Migrate(db); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	if err := store.SeedPlantTypes(db); err != nil {
		log.Fatal("Failed to seed plant types: ", err)
	}

	// Optional MQTT telemetry ingestion alongside the HTTP sink.
	if cfg.MQTTBroker != "" {
		if err := ingest.Start(cfg.MQTTBroker, db, controllers.NotifyReading); err != nil {
			log.Fatal("Failed to start MQTT ingest: ", err)
		}
	}

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes: devices cannot authenticate or retry meaningfully.
	r.POST("/api/register", controllers.Register)
	r.POST("/api/login", controllers.Login(cfg.JWTSecret))
	r.POST("/api/sensores", controllers.ReceiveReading)
	r.GET("/api/parametros", controllers.GetDeviceConfig)

	// Protected routes using auth middleware
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	auth.GET("/plantas", controllers.GetPlantTypes)
	auth.PUT("/parametros", controllers.UpdateParameters)
	auth.GET("/user-parametros", controllers.GetUserParameters)
	auth.GET("/lecturas", controllers.GetReadings)
	auth.GET("/lectura-actual", controllers.GetLatestReading)
	auth.GET("/ws", controllers.HandleWebSocket)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
