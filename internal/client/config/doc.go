// Package config loads runtime configuration for the Egiraffe CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file selected via flags: -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "300ms" or integer nanoseconds:
//
//	{
//	  "base_url": "https://egiraffe.example.org",
//	  "search_debounce": "300ms",
//	  "online_check_interval": "3s"
//	}
package config
