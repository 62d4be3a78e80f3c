// Package config loads runtime configuration for the PlanAndGo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: PLANANDGO_BASE_URL, PLANANDGO_REQUEST_TIMEOUT,
//     PLANANDGO_STATE_PATH, PLANANDGO_LOG_LEVEL. A .env file in the working
//     directory is read first; real environment variables win over it.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-s string   local state database path
//	-l string   log level
//
// # JSON schema
//
// request_timeout uses timex.Duration, so it can be a string like "30s" or
// integer nanoseconds:
//
//	{
//	  "base_url": "https://planandgo.example.com",
//	  "request_timeout": "30s",
//	  "state_path": "/home/alice/.planandgo.db",
//	  "log_level": "debug"
//	}
package config
