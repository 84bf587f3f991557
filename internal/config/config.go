package config

import "time"

// Config holds runtime settings for the Bloodstream client.
//
// Fields:
//   - APIBaseURL: base URL of the REST API, including the /api prefix.
//   - SocketURL: ws:// or wss:// endpoint of the realtime channel.
//   - SessionDBPath: path to the local SQLite file holding the persisted session.
//   - HTTPTimeout: per-request timeout for API calls.
//   - ReconnectInitialDelay / ReconnectMaxDelay / ReconnectMaxAttempts:
//     backoff schedule for the realtime channel.
type Config struct {
	APIBaseURL            string
	SocketURL             string
	SessionDBPath         string
	HTTPTimeout           time.Duration
	ReconnectInitialDelay time.Duration
	ReconnectMaxDelay     time.Duration
	ReconnectMaxAttempts  int
}

// LoadDefaults populates c with development defaults matching a local backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.SocketURL = "ws://localhost:5000/ws"
	c.SessionDBPath = "bloodstream.db"
	c.HTTPTimeout = 10 * time.Second
	c.ReconnectInitialDelay = 1 * time.Second
	c.ReconnectMaxDelay = 5 * time.Second
	c.ReconnectMaxAttempts = 5
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
