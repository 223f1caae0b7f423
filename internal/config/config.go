package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend selection values.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Env            string
	HTTPPort       string
	StorageBackend string
	StorageDir     string
	StorageKey     string
	RedisURL       string
	Latency        time.Duration
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is fine, real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendFile),
		StorageDir:     getEnv("STORAGE_DIR", "data"),
		StorageKey:     getEnv("STORAGE_KEY", "ecommerce_products"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
	}

	latencyMS := getEnv("LATENCY_MS", "800")
	ms, err := strconv.Atoi(latencyMS)
	if err != nil || ms < 0 {
		return nil, fmt.Errorf("invalid LATENCY_MS %q", latencyMS)
	}
	cfg.Latency = time.Duration(ms) * time.Millisecond

	if cfg.StorageBackend != BackendFile && cfg.StorageBackend != BackendRedis {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q (want %q or %q)", cfg.StorageBackend, BackendFile, BackendRedis)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
