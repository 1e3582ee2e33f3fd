package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Store backends selectable with STORE_BACKEND.
const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Upstream services
	UserAgent    string        // sent to both the geocoder and the POI query service
	NominatimURL string        // env: NOMINATIM_URL
	OverpassURL  string        // env: OVERPASS_URL
	HTTPTimeout  time.Duration // env: HTTP_TIMEOUT, client-side timeout per request

	// Known-ID store
	StoreBackend string // file, redis, postgres or memory
	KnownIDsFile string // env: KNOWN_IDS_FILE
	RedisURL     string
	DatabaseURL  string

	// Optional YAML file with search settings
	ConfigFile string

	// Site Branding
	SiteTitle string // env: SITE_TITLE, default: "Business Finder"

	// Populated from ConfigFile, falls back to DefaultSearch.
	Search SearchConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		UserAgent:    getEnv("USER_AGENT", "web-scraper-app"),
		NominatimURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		OverpassURL:  getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		HTTPTimeout:  getDuration("HTTP_TIMEOUT", 30*time.Second),
		StoreBackend: getEnv("STORE_BACKEND", StoreFile),
		KnownIDsFile: getEnv("KNOWN_IDS_FILE", "known_osm_ids.csv"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:  getEnv("DATABASE_URL", "postgres://localhost:5432/bizfinder?sslmode=disable"),
		ConfigFile:   getEnv("CONFIG_FILE", "config.yaml"),
		SiteTitle:    getEnv("SITE_TITLE", "Business Finder"),
		Search:       DefaultSearch(),
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
