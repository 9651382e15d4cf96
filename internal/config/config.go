// Package config loads the coordconvd settings from the environment, after
// merging an optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service settings.
type Config struct {
	Port string
	// GinMode is passed to gin.SetMode: "debug", "release" or "test".
	GinMode string
	// MGRSPrecision is the number of digits per axis used when the service
	// formats MGRS references derived from latitude/longitude.
	MGRSPrecision int
	// BatchLimit caps the number of references accepted by one batch request.
	BatchLimit int
}

// Load reads the given .env files (".env" if none) and the environment.
// Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
	}

	var err error
	cfg.MGRSPrecision, err = getInt("MGRS_PRECISION", 5)
	if err != nil {
		return Config{}, err
	}
	if cfg.MGRSPrecision < 0 || cfg.MGRSPrecision > 5 {
		return Config{}, fmt.Errorf("config: MGRS_PRECISION must be 0-5, got %d", cfg.MGRSPrecision)
	}
	cfg.BatchLimit, err = getInt("BATCH_LIMIT", 1000)
	if err != nil {
		return Config{}, err
	}
	if cfg.BatchLimit < 1 {
		return Config{}, fmt.Errorf("config: BATCH_LIMIT must be positive, got %d", cfg.BatchLimit)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}
	return n, nil
}
