package config

import (
	"time"
)

// Config holds runtime settings for the PlanAndGo CLI.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the PlanAndGo REST backend.
//   - RequestTimeout: per-request HTTP timeout.
//   - StatePath: SQLite file holding the local session.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	StatePath      string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 30 * time.Second
	c.StatePath = "planandgo.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, then overlays the
// environment (including a .env file in the working directory), the JSON
// file named by -c/-config and finally the command-line flags in args
// (os.Args[1:] in production). Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
