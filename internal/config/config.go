package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort           string
	DatabaseType         string // sqlite, postgres or mysql
	DatabasePath         string
	DatabaseURL          string
	MigrationsPath       string
	SessionSecret        string
	SessionDuration      time.Duration
	ChildSessionDuration time.Duration
	AWSRegion            string
	SESFromEmail         string
	SESFromName          string
}

// Load reads configuration from a .env file if present, then from
// environment variables with sensible defaults.
func Load() *Config {
	// Missing .env is fine, real environments set variables directly.
	_ = godotenv.Load()

	return &Config{
		ServerPort:           getEnv("PORT", "8080"),
		DatabaseType:         getEnv("DB_TYPE", "sqlite"),
		DatabasePath:         getEnv("DB_PATH", "./kidlearn.db"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		MigrationsPath:       getEnv("MIGRATIONS_PATH", "./migrations"),
		SessionSecret:        getEnv("SESSION_SECRET", "dev-only-secret"),
		SessionDuration:      getDuration("SESSION_DURATION", 24*time.Hour),
		ChildSessionDuration: getDuration("CHILD_SESSION_DURATION", 12*time.Hour),
		AWSRegion:            getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:         getEnv("SES_FROM_EMAIL", ""),
		SESFromName:          getEnv("SES_FROM_NAME", "KidLearn"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration reads a duration environment variable or returns a default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
