package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, "ws://localhost:5000/ws", cfg.SocketURL)
	assert.Equal(t, "bloodstream.db", cfg.SessionDBPath)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 1*time.Second, cfg.ReconnectInitialDelay)
	assert.Equal(t, 5*time.Second, cfg.ReconnectMaxDelay)
	assert.Equal(t, 5, cfg.ReconnectMaxAttempts)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("BLOODSTREAM_API_URL", "https://api.bloodstream.example/api")
	t.Setenv("BLOODSTREAM_SOCKET_URL", "wss://api.bloodstream.example/ws")
	t.Setenv("BLOODSTREAM_DB", "/tmp/bs.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.bloodstream.example/api", cfg.APIBaseURL)
	assert.Equal(t, "wss://api.bloodstream.example/ws", cfg.SocketURL)
	assert.Equal(t, "/tmp/bs.db", cfg.SessionDBPath)
}

func TestParseEnv_EmptyKeepsDefaults(t *testing.T) {
	t.Setenv("BLOODSTREAM_API_URL", "")
	t.Setenv("BLOODSTREAM_SOCKET_URL", "")
	t.Setenv("BLOODSTREAM_DB", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, "ws://localhost:5000/ws", cfg.SocketURL)
}

func TestParseFlags_Overlays(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", "http://api.test/api",
		"-s", "ws://api.test/ws",
		"-d", "x.db",
		"-t", "30",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://api.test/api", cfg.APIBaseURL)
	assert.Equal(t, "ws://api.test/ws", cfg.SocketURL)
	assert.Equal(t, "x.db", cfg.SessionDBPath)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestParseJSON_PartialFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "conf.json")
	body := `{"api_base_url":"http://json.test/api","reconnect_max_attempts":7}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://json.test/api", cfg.APIBaseURL)
	assert.Equal(t, 7, cfg.ReconnectMaxAttempts)
	// Untouched fields keep their defaults.
	assert.Equal(t, "ws://localhost:5000/ws", cfg.SocketURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}
