package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/bloodstream/bloodstream-go/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in seconds so config files stay plain numbers.
type jsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	SocketURL             string `json:"socket_url"`
	SessionDBPath         string `json:"session_db_path"`
	HTTPTimeoutSec        int    `json:"http_timeout_sec"`
	ReconnectInitialMilli int    `json:"reconnect_initial_ms"`
	ReconnectMaxMilli     int    `json:"reconnect_max_ms"`
	ReconnectMaxAttempts  int    `json:"reconnect_max_attempts"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. Missing flag means no JSON stage. Only fields present in
// the file (non-zero after unmarshal) are copied, so partial files work.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SocketURL != "" {
		cfg.SocketURL = jc.SocketURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.HTTPTimeoutSec > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeoutSec) * time.Second
	}
	if jc.ReconnectInitialMilli > 0 {
		cfg.ReconnectInitialDelay = time.Duration(jc.ReconnectInitialMilli) * time.Millisecond
	}
	if jc.ReconnectMaxMilli > 0 {
		cfg.ReconnectMaxDelay = time.Duration(jc.ReconnectMaxMilli) * time.Millisecond
	}
	if jc.ReconnectMaxAttempts > 0 {
		cfg.ReconnectMaxAttempts = jc.ReconnectMaxAttempts
	}
}
