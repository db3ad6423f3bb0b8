// Package config loads runtime configuration for the BiteShare client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed BITESHARE_, optionally read from a
//     .env file in the working directory.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string     data directory holding the database
//	-f string     database file name inside the data directory
//	-w duration   "checking authentication" delay before route decisions
//	-t duration   artificial login latency
//	-l string     log level (debug, info, warn, error)
//	-s            seed demo accounts and requests on first start
//
// # JSON schema
//
// Durations use timex.Duration, so "500ms" and integer nanoseconds both work:
//
//	{
//	  "data_dir": ".biteshare",
//	  "db_file": "biteshare.db",
//	  "auth_check_delay": "500ms",
//	  "login_delay": "1s",
//	  "seed_demo": true,
//	  "log_level": "info"
//	}
package config
