package app

import (
	"os"
	"strconv"
	"time"

	"github.com/strataworks/societyd/pkg/jwtx"
)

type Config struct {
	Issuer     string // Issuer claim for session tokens (default: societyd)
	JWTSecret  string // Required: HMAC secret for session tokens
	SessionTTL time.Duration // Session token and cookie lifetime (default: 24h)

	DatabaseFile  string // Path to SQLite database file (default: ./society.db)
	PepperFile    string // Path to file containing pepper for password hashing (default: ./pepper)
	SecureCookies bool   // Mark session cookies Secure (default: true outside dev)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("SOCIETY_ISSUER", "societyd"),
		JWTSecret:           os.Getenv("SOCIETY_JWT_SECRET"),
		SessionTTL:          getEnvDurationOrDefault("SOCIETY_SESSION_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile:        getEnvOrDefault("SOCIETY_DATABASE_FILE", "society.db"),
		PepperFile:          getEnvOrDefault("SOCIETY_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// Cookies stay plain-HTTP friendly in dev only.
	cfg.SecureCookies = cfg.Env != "dev"
	if v := os.Getenv("SOCIETY_SECURE_COOKIES"); v != "" {
		if secure, err := strconv.ParseBool(v); err == nil {
			cfg.SecureCookies = secure
		}
	}

	return cfg
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
