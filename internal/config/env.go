package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables recognized by parseEnv. CASHTRACK_API_URL selects the
// backend base address; the rest tune local behavior.
const (
	envAPIURL      = "CASHTRACK_API_URL"
	envDBPath      = "CASHTRACK_DB_PATH"
	envPageLimit   = "CASHTRACK_PAGE_LIMIT"
	envHTTPTimeout = "CASHTRACK_HTTP_TIMEOUT"
	envTrendMonths = "CASHTRACK_TREND_MONTHS"
)

func parseEnv(cfg *Config) {
	cfg.APIBaseURL = getEnv(envAPIURL, cfg.APIBaseURL)
	cfg.DatabasePath = getEnv(envDBPath, cfg.DatabasePath)
	cfg.PageLimit = getEnvInt(envPageLimit, cfg.PageLimit)
	cfg.HTTPTimeout = getEnvDuration(envHTTPTimeout, cfg.HTTPTimeout)
	cfg.TrendMonths = getEnvInt(envTrendMonths, cfg.TrendMonths)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
