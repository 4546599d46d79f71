package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort           int
	DatabasePath         string
	UploadDir            string // Base path for uploaded images
	JWTSecret            string
	CORSOrigins          []string
	DefaultAdminUsername string
	DefaultAdminPassword string
	FeedRefreshSchedule  string // Cron expression for the feed refresher
	FeedCacheTTL         time.Duration
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	ttlStr := getEnv("FEED_CACHE_TTL", "10m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:           port,
		DatabasePath:         getEnv("DATABASE_PATH", "./portfolio.db"),
		UploadDir:            getEnv("UPLOAD_DIR", "./uploads"),
		JWTSecret:            getEnv("JWT_SECRET", "change-me-in-production"),
		CORSOrigins:          strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		DefaultAdminUsername: getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
		FeedRefreshSchedule:  getEnv("FEED_REFRESH_SCHEDULE", "*/15 * * * *"),
		FeedCacheTTL:         ttl,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
