package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, sourced from the environment with an
// optional .env file for local runs.
type Config struct {
	// Server
	ServerPort string
	Debug      bool

	// External services
	DirectionsAPIKey string
	OCMAPIKey        string

	// Database
	DatabaseURL string

	// Station cache
	RedisAddr       string
	StationCacheTTL time.Duration

	// API defaults
	PlanListLimit int
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       Get("PORT", "8080"),
		Debug:            getBool("DEBUG", false),
		DirectionsAPIKey: os.Getenv("DIRECTIONS_API_KEY"),
		OCMAPIKey:        os.Getenv("OCM_API_KEY"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		StationCacheTTL:  getDuration("STATION_CACHE_TTL", 6*time.Hour),
		PlanListLimit:    getInt("PLAN_LIST_LIMIT", 20),
	}
}

// Get returns an environment variable or a fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
