package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. It is built
// once in main and passed explicitly; nothing else touches os.Getenv.
type Config struct {
	Env      string // "development" gets console logs, anything else JSON
	LogLevel string
	DBPath   string
	LogoPath string
}

// Load reads a .env file when one is present and falls back to the process
// environment and defaults. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:      getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		DBPath:   getenv("DB_PATH", "autorepair.db"),
		LogoPath: getenv("LOGO_PATH", "logo.png"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
