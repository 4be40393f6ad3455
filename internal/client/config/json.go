package config

import (
	"encoding/json"
	"os"

	"github.com/egiraffe/egiraffe-cli/internal/flagx"
	"github.com/egiraffe/egiraffe-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be given either as strings like "300ms"
// or as integer nanoseconds; values are then copied into the runtime Config.
type JsonConfig struct {
	BaseURL             string         `json:"base_url"`
	SearchDebounce      timex.Duration `json:"search_debounce"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Without the flag nothing is loaded. Read or
// unmarshal errors panic; only empty fields are left untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
