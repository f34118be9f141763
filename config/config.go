package config

import (
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DB is the shared database handle, set once at startup.
var DB *gorm.DB

// Config holds process-wide settings. It is built once by Load and passed by
// reference; request handlers never read the environment directly.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    []byte
	MQTTBroker   string
	AllowOrigins []string
}

const devFallbackSecret = "dev-only-secret-do-not-deploy"

// Load reads configuration from the environment. An unset JWT_SECRET is fatal
// in release mode; in development it falls back to a flagged dummy value.
func Load() *Config {
	cfg := &Config{
		Port:        getenv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MQTTBroker:  os.Getenv("MQTT_BROKER"),
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if gin.Mode() == gin.ReleaseMode {
			log.Fatal("JWT_SECRET must be set in release mode")
		}
		log.Println("WARNING: JWT_SECRET not set, using development fallback secret")
		secret = devFallbackSecret
	}
	cfg.JWTSecret = []byte(secret)

	if origins := os.Getenv("ALLOW_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
