package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/planandgo/internal/flagx"
	"github.com/dmitrijs2005/planandgo/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the corresponding Config value untouched.
type JSONConfig struct {
	BaseURL        string          `json:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	StatePath      string          `json:"state_path"`
	LogLevel       string          `json:"log_level"`
}

// parseJSON overlays cfg with the file given by -c or -config in args. With
// no such flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StatePath != "" {
		cfg.StatePath = jc.StatePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
