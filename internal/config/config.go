package config

import "time"

// Config holds runtime settings for the CashTrack CLI.
//
// Fields:
//   - APIBaseURL: base address of the CashTrack backend.
//   - DatabasePath: sqlite file for the persisted session.
//   - PageLimit: page size for expense/income listings.
//   - HTTPTimeout: transport-level timeout for backend calls.
//   - TrendMonths: trailing window of the monthly trend, in calendar months.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	PageLimit    int
	HTTPTimeout  time.Duration
	TrendMonths  int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabasePath = "cashtrack.db"
	c.PageLimit = 10
	c.HTTPTimeout = 15 * time.Second
	c.TrendMonths = 6
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
