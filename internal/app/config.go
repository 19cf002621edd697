package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	SessionSecret string        // Required: symmetric secret for session token signing
	SessionTTL    time.Duration // Session lifetime for token exp and cookie max-age (default: 1h)
	Issuer        string        // Issuer claim for session tokens (default: staffgate)

	DatabaseFile     string // Path to the sqlite database file (default: ./staffgate.db)
	DatabaseMaxConns int    // Connection pool bound; waiters queue, never fail fast (default: 10)

	AdminEmail    string // Optional: seed credentials for the first admin account
	AdminPassword string

	Env                 string        // Environment (dev, production) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", time.Hour),
		Issuer:              getEnvOrDefault("SESSION_ISSUER", "staffgate"),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "staffgate.db"),
		DatabaseMaxConns:    getEnvIntOrDefault("DATABASE_MAX_CONNS", 10),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// IsProduction gates the Secure cookie attribute: only production
// deployments are assumed to sit behind TLS.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
