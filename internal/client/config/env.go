package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables, all optional:
//
//	EGIRAFFE_BASE_URL               backend root URL
//	EGIRAFFE_SEARCH_DEBOUNCE        duration string, e.g. "300ms"
//	EGIRAFFE_ONLINE_CHECK_INTERVAL  duration string, e.g. "3s"

// parseEnv overlays Config with environment values. A .env file in the
// working directory is loaded first; a missing file is fine, real
// environment variables always win over .env entries.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("EGIRAFFE_BASE_URL"); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("EGIRAFFE_SEARCH_DEBOUNCE"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SearchDebounce = d
		}
	}
	if v, ok := os.LookupEnv("EGIRAFFE_ONLINE_CHECK_INTERVAL"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
}
