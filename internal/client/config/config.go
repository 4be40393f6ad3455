package config

import "time"

// Config holds runtime settings for the Egiraffe CLI.
//
// Fields:
//   - BaseURL: root of the backend, the /api/v1 prefix is appended per call.
//   - SearchDebounce: quiet period before a course-search keystroke burst
//     turns into a request.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	BaseURL             string
	SearchDebounce      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.SearchDebounce = 300 * time.Millisecond
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
