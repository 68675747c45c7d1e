package config

import "time"

// Config holds runtime settings for the terminal client.
//
//   - ServerURL: base URL of the FoundrMate HTTP API.
//   - DBPath: SQLite file keeping the session and the roadmap tasks.
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerURL      string
	DBPath         string
	RequestTimeout time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.DBPath = "foundrmate.db"
	c.RequestTimeout = 10 * time.Second
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
