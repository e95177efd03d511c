package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"townlink/internal/ratelimiter"
)

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	logLevel    string
	auth        authConfig
	cors        corsConfig
	rateLimiter ratelimiter.Config
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
	autoMigrate bool
}

// authConfig holds the admin gate secret. Exactly one of the two is needed;
// the hash wins when both are set.
type authConfig struct {
	adminKey     string
	adminKeyHash string
}

type corsConfig struct {
	allowedOrigins []string
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return fallback
}

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 20
	defaultEnabled := false
	defaultTimeFrame := time.Minute

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil && parsedVal > 0 {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	timeFrame := defaultTimeFrame
	if val, exists := os.LookupEnv("RATELIMITER_TIME_FRAME"); exists {
		if parsedVal, err := time.ParseDuration(val); err == nil && parsedVal > 0 {
			timeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_TIME_FRAME, defaulting to", defaultTimeFrame)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            timeFrame,
		Enabled:              enabled,
	}
}

func loadConfig() (config, error) {
	maxConns, err := strconv.ParseInt(getString("DB_MAX_CONNS", "30"), 10, 32)
	if err != nil || maxConns <= 0 {
		return config{}, fmt.Errorf("invalid value for DB_MAX_CONNS: %q", os.Getenv("DB_MAX_CONNS"))
	}

	autoMigrate, err := strconv.ParseBool(getString("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return config{}, fmt.Errorf("invalid value for DB_AUTO_MIGRATE: %w", err)
	}

	cfg := config{
		addr:     getString("ADDR", ":8080"),
		env:      getString("ENV", "development"),
		apiURL:   getString("EXTERNAL_URL", "localhost:8080"),
		logLevel: getString("LOG_LEVEL", "info"),
		db: dbConfig{
			addr:        getString("DB_ADDR", ""),
			maxConns:    int32(maxConns),
			maxIdleTime: getString("DB_MAX_IDLE_TIME", "15m"),
			autoMigrate: autoMigrate,
		},
		auth: authConfig{
			adminKey:     os.Getenv("ADMIN_KEY"),
			adminKeyHash: os.Getenv("ADMIN_KEY_HASH"),
		},
		cors: corsConfig{
			allowedOrigins: splitList(getString("CORS_ALLOWED_ORIGINS", "https://*,http://*")),
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	if cfg.db.addr == "" {
		return config{}, errors.New("DB_ADDR is required")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
