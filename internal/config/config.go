package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database (optional; in-memory storage is used when empty)
	DatabaseURL string

	// JWT
	JWTSecret          string
	JWTExpirationHours int

	// Photo uploads
	UploadDir         string
	MaxPhotosPerUser  int
	MaxPhotoSizeBytes int64
}

func Load() (*Config, error) {
	// Best effort; env vars win over .env entries.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 168),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		MaxPhotosPerUser:   getEnvInt("MAX_PHOTOS_PER_USER", 6),
		MaxPhotoSizeBytes:  int64(getEnvInt("MAX_PHOTO_SIZE_MB", 5)) * 1024 * 1024,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
