package config

import "os"

// parseEnv overlays cfg with values from the environment. Deployment
// platforms supply the API and realtime endpoints this way.
func parseEnv(cfg *Config) {
	if v := os.Getenv("BLOODSTREAM_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("BLOODSTREAM_SOCKET_URL"); v != "" {
		cfg.SocketURL = v
	}
	if v := os.Getenv("BLOODSTREAM_DB"); v != "" {
		cfg.SessionDBPath = v
	}
}
