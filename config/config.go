package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Environment  string
	CanvasSize   int // logical square edge in CSS pixels
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
}

// Load reads .env when present, then the process environment. A missing .env
// is fine; containers inject variables directly.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENV", "development"),
		CanvasSize:   getEnvAsInt("CANVAS_SIZE", 320),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
