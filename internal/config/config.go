package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// Server
	Port string
	Host string

	// Database
	DBDriver string // "sqlite" or "postgres"
	DBPath   string // sqlite file path
	DBDSN    string // postgres DSN

	// Security
	JWTSecret     string
	JWTExpiration time.Duration

	// Bootstrap admin account, created on first start when no users exist.
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from environment variables, honouring a .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:          getEnv("PORT", "8000"),
		Host:          getEnv("HOST", "0.0.0.0"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBPath:        getEnv("DB_PATH", "/tmp/school.db"),
		DBDSN:         getEnv("DB_DSN", ""),
		JWTSecret:     getEnv("JWT_SECRET", "school_mngmt_secret_key"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@school.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	if hours, err := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24")); err == nil {
		config.JWTExpiration = time.Duration(hours) * time.Hour
	} else {
		config.JWTExpiration = 24 * time.Hour
	}

	return config, nil
}

// getEnv returns the environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
