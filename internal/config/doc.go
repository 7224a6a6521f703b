// Package config loads runtime configuration for the CashTrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (see parseEnv); a .env file loaded by the caller
//     via godotenv feeds into this stage.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported environment variables
//
//	CASHTRACK_API_URL       base address of the backend (default http://localhost:8000)
//	CASHTRACK_DB_PATH       local sqlite database file
//	CASHTRACK_PAGE_LIMIT    page size for listings
//	CASHTRACK_HTTP_TIMEOUT  transport timeout, Go duration syntax (e.g. "15s")
//	CASHTRACK_TREND_MONTHS  trailing window of the monthly trend
//
// Supported flags
//
//	-a string   base address of the backend API
//	-d string   path to the local database file
//	-l int      page size for listings
package config
