// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the API service.
type Config struct {
	Port              string
	DatabaseURL       string
	RedisURL          string
	FollowUpScanHours int // how often the follow-up reminder cron fires
}

// Load reads environment variables and returns a validated Config. A local
// .env file is honoured when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	scanHours := 1
	if s := os.Getenv("FOLLOWUP_SCAN_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("FOLLOWUP_SCAN_HOURS must be a positive integer, got %q", s)
		}
		scanHours = v
	}

	return &Config{
		Port:              port,
		DatabaseURL:       dbURL,
		RedisURL:          redisURL,
		FollowUpScanHours: scanHours,
	}, nil
}
