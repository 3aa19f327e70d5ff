package app

import (
	"os"
	"strconv"
	"time"

	"github.com/intlakaa/backoffice/pkg/jwtx"
	"github.com/intlakaa/backoffice/pkg/mailx"
)

type Config struct {
	Issuer    string        // Issuer claim for session tokens
	JWTSecret string        // Required: HS256 signing secret (>= 32 bytes)
	JWTTTL    time.Duration // Optional: session lifetime (default: 7 days)

	DatabaseFile string // Optional: path to SQLite database file (default: ./backoffice.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	FrontendURL string        // Base URL used in invite links (default: http://localhost:3000)
	InviteTTL   time.Duration // Optional: invite lifetime (default: 1h)

	Email       mailx.Config // SMTP transport; incomplete settings mean development mode
	NotifyEmail string       // Operator address for consultation request notifications

	OwnerName     string // Optional: seed owner identity on first boot (container deployments)
	OwnerEmail    string // Optional: owner email for first-boot seeding
	OwnerPassword string // Optional: owner password for first-boot seeding

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Invite purge interval (default: 10m)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       getEnvOrDefault("ADMIN_ISSUER", "intlakaa-backoffice"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTTTL:       getEnvDurationOrDefault("JWT_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile: getEnvOrDefault("ADMIN_DATABASE_FILE", "backoffice.db"),
		PepperFile:   getEnvOrDefault("ADMIN_PEPPER_FILE", "pepper"),
		FrontendURL:  getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		InviteTTL:    getEnvDurationOrDefault("INVITE_TTL", time.Hour),
		Email: mailx.Config{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     getEnvIntOrDefault("EMAIL_PORT", 587),
			Username: os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			From:     os.Getenv("EMAIL_FROM"),
		},
		NotifyEmail:          os.Getenv("NOTIFY_EMAIL"),
		OwnerName:            os.Getenv("OWNER_NAME"),
		OwnerEmail:           os.Getenv("OWNER_EMAIL"),
		OwnerPassword:        os.Getenv("OWNER_PASSWORD"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 10*time.Minute),
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
